package presenters

import (
	"cmsadmin/application"
)

// ContentPresenterInterface defines the contract for content list presentation logic.
type ContentPresenterInterface interface {
	// ToContentListView converts service data to the list response body.
	ToContentListView(result *application.ListResult) *ContentListView
}

// Ensure ContentPresenter implements the interface.
var _ ContentPresenterInterface = (*ContentPresenter)(nil)
