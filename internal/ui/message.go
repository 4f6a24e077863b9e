package ui

import (
	"github.com/desertthunder/vidsum/internal/models"
	"github.com/desertthunder/vidsum/internal/services"
	"github.com/desertthunder/vidsum/internal/session"
)

// navigateMsg asks the root model to route to a path.
type navigateMsg struct {
	path string
}

// sessionChangedMsg bridges oracle watcher callbacks into the event loop.
type sessionChangedMsg struct {
	event session.Event
}

// searchResultsMsg completes a search command. gen matches the search
// generation that issued the request; stale generations are dropped.
type searchResultsMsg struct {
	gen    int
	videos []models.VideoResult
	err    error
}

// summaryResultMsg completes a summarize command.
type summaryResultMsg struct {
	gen     int
	videoID string
	summary *models.Summary
	err     error
}

// subsLoadedMsg completes the initial subscription fetch after sign-in.
type subsLoadedMsg struct {
	subs []models.Subscription
	err  error
}

// subToggledMsg completes a subscribe or unsubscribe call. sub is the
// server-confirmed entry on subscribe, nil on unsubscribe.
type subToggledMsg struct {
	channelID  string
	subscribed bool
	sub        *models.Subscription
	err        error
}

// signInDoneMsg completes a login or register submission.
type signInDoneMsg struct {
	user *models.User
	err  error
}

// logoutRequestMsg asks the root model to run the sign-out flow; views
// with their own logout control emit it instead of calling the oracle.
type logoutRequestMsg struct{}

// logoutDoneMsg completes the nav bar's sign-out action.
type logoutDoneMsg struct {
	err error
}

// verifyResultMsg completes the auth-test backend verification.
type verifyResultMsg struct {
	claims *services.AuthClaims
	err    error
}

// tokenFetchedMsg carries the raw bearer token for the auth-test view.
type tokenFetchedMsg struct {
	token string
	err   error
}

// noteMsg is a transient status line (clipboard copies, exports).
type noteMsg struct {
	text string
	err  error
}
