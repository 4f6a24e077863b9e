package ui

// Strings is the localized label set for the UI. Views never hard-code
// user-facing text; they read it from the active table.
type Strings struct {
	NavHome     string
	NavAbout    string
	NavContact  string
	NavLogin    string
	NavRegister string
	NavProfile  string
	NavAuthTest string
	NavLogout   string

	SearchPrompt    string
	SearchButton    string
	Searching       string
	ResultsCount    string // fmt verb: %d
	NoResults       string
	LoginRequired   string
	FilterAll       string
	WatchAction     string
	SubscribeAction string
	UnsubAction     string

	SummaryPrompt   string
	Summarizing     string
	SummaryTitle    string
	KeyPointsTitle  string
	MainTopicsTitle string
	NoKeyPoints     string
	NoTopics        string
	InvalidVideo    string
	StructuredLabel string
	MarkdownLabel   string
	CopiedNote      string
	ExportedNote    string // fmt verb: %s
	NothingToCopy   string

	EmailLabel    string
	PasswordLabel string
	ConfirmLabel  string
	LoginTitle    string
	RegisterTitle string
	LoggingIn     string
	Registering   string
	LoggingOut    string
	ProfileTitle  string
	EmailVerified string
	NotVerified   string
	AuthTestTitle string
	AuthTestHint  string
	VerifyAction  string
	TokenCopied   string
	CounterLabel  string // fmt verb: %d
	ErrorPrefix   string // fmt verb: %v
}

// localeStrings selects the label table for a locale tag. Unknown tags
// fall back to English.
func localeStrings(locale string) Strings {
	if locale == "ja" {
		return jaStrings
	}
	return enStrings
}

var enStrings = Strings{
	NavHome:     "Home",
	NavAbout:    "About",
	NavContact:  "Contact",
	NavLogin:    "Login",
	NavRegister: "Register",
	NavProfile:  "Profile",
	NavAuthTest: "Auth Test",
	NavLogout:   "Logout",

	SearchPrompt:    "Search YouTube videos",
	SearchButton:    "Search",
	Searching:       "Searching...",
	ResultsCount:    "%d results",
	NoResults:       "No videos found",
	LoginRequired:   "You must be logged in to do that",
	FilterAll:       "All channels",
	WatchAction:     "watch",
	SubscribeAction: "subscribe",
	UnsubAction:     "unsubscribe",

	SummaryPrompt:   "Video ID or YouTube URL",
	Summarizing:     "Generating summary...",
	SummaryTitle:    "Summary",
	KeyPointsTitle:  "Key Points",
	MainTopicsTitle: "Main Topics",
	NoKeyPoints:     "No key points available.",
	NoTopics:        "No topics available.",
	InvalidVideo:    "Invalid video ID or URL",
	StructuredLabel: "structured",
	MarkdownLabel:   "markdown",
	CopiedNote:      "Copied to clipboard",
	ExportedNote:    "Exported to %s",
	NothingToCopy:   "Nothing to copy",

	EmailLabel:    "Email",
	PasswordLabel: "Password",
	ConfirmLabel:  "Confirm password",
	LoginTitle:    "Login",
	RegisterTitle: "Register",
	LoggingIn:     "Signing in...",
	Registering:   "Creating account...",
	LoggingOut:    "Signing out...",
	ProfileTitle:  "User Profile",
	EmailVerified: "Verified",
	NotVerified:   "Not verified",
	AuthTestTitle: "Auth Test",
	AuthTestHint:  "Verify the current token against the backend",
	VerifyAction:  "verify",
	TokenCopied:   "Full token copied to clipboard",
	CounterLabel:  "Counter: %d",
	ErrorPrefix:   "Error: %v",
}

var jaStrings = Strings{
	NavHome:     "ホーム",
	NavAbout:    "概要",
	NavContact:  "お問い合わせ",
	NavLogin:    "ログイン",
	NavRegister: "新規登録",
	NavProfile:  "プロフィール",
	NavAuthTest: "認証テスト",
	NavLogout:   "ログアウト",

	SearchPrompt:    "YouTube動画を検索",
	SearchButton:    "検索",
	Searching:       "検索中...",
	ResultsCount:    "%d件の結果",
	NoResults:       "動画が見つかりません",
	LoginRequired:   "この操作にはログインが必要です",
	FilterAll:       "すべてのチャンネル",
	WatchAction:     "視聴",
	SubscribeAction: "登録",
	UnsubAction:     "登録解除",

	SummaryPrompt:   "動画IDまたはYouTube URL",
	Summarizing:     "要約を生成中...",
	SummaryTitle:    "要約",
	KeyPointsTitle:  "重要ポイント",
	MainTopicsTitle: "主なトピック",
	NoKeyPoints:     "重要ポイントはありません。",
	NoTopics:        "トピックはありません。",
	InvalidVideo:    "無効な動画IDまたはURLです",
	StructuredLabel: "構造化",
	MarkdownLabel:   "マークダウン",
	CopiedNote:      "クリップボードにコピーしました",
	ExportedNote:    "%s にエクスポートしました",
	NothingToCopy:   "コピーする内容がありません",

	EmailLabel:    "メールアドレス",
	PasswordLabel: "パスワード",
	ConfirmLabel:  "パスワード（確認）",
	LoginTitle:    "ログイン",
	RegisterTitle: "新規登録",
	LoggingIn:     "ログイン中...",
	Registering:   "アカウント作成中...",
	LoggingOut:    "ログアウト中...",
	ProfileTitle:  "ユーザープロフィール",
	EmailVerified: "確認済み",
	NotVerified:   "未確認",
	AuthTestTitle: "認証テスト",
	AuthTestHint:  "現在のトークンをバックエンドで検証します",
	VerifyAction:  "検証",
	TokenCopied:   "トークン全体をクリップボードにコピーしました",
	CounterLabel:  "カウンター: %d",
	ErrorPrefix:   "エラー: %v",
}
