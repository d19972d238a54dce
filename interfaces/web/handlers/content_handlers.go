package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"cmsadmin/application"
	"cmsadmin/domain/contracts"
	"cmsadmin/interfaces/web/presenters"
	"cmsadmin/logging"
)

// maxListRequestBytes caps the size of a list request body.
const maxListRequestBytes = 1 << 20

// ContentLister lists a channel's contents for a caller.
type ContentLister interface {
	List(ctx context.Context, caller *application.Caller, req application.ListRequest) (*application.ListResult, error)
}

// ContentListRequest is the JSON body of the content list endpoint.
type ContentListRequest struct {
	SiteID        int64    `json:"siteId"`
	ChannelID     int64    `json:"channelId"`
	IsAllContents bool     `json:"isAllContents"`
	Page          int      `json:"page"`
	SearchType    string   `json:"searchType"`
	SearchText    string   `json:"searchText"`
	IsAdvanced    bool     `json:"isAdvanced"`
	CheckedLevels []int    `json:"checkedLevels"`
	IsTop         bool     `json:"isTop"`
	IsRecommend   bool     `json:"isRecommend"`
	IsHot         bool     `json:"isHot"`
	IsColor       bool     `json:"isColor"`
	GroupNames    []string `json:"groupNames"`
	TagNames      []string `json:"tagNames"`
}

// ToListRequest converts the body to the service request. Pages below 1 become 1.
func (r ContentListRequest) ToListRequest() application.ListRequest {
	page := r.Page
	if page < 1 {
		page = 1
	}

	return application.ListRequest{
		SiteID:        r.SiteID,
		ChannelID:     r.ChannelID,
		IsAllContents: r.IsAllContents,
		Page:          page,
		SearchType:    r.SearchType,
		SearchText:    r.SearchText,
		IsAdvanced:    r.IsAdvanced,
		CheckedLevels: r.CheckedLevels,
		IsTop:         r.IsTop,
		IsRecommend:   r.IsRecommend,
		IsHot:         r.IsHot,
		IsColor:       r.IsColor,
		GroupNames:    r.GroupNames,
		TagNames:      r.TagNames,
	}
}

// ContentHandlers handles content-related HTTP endpoints.
type ContentHandlers struct {
	lister    ContentLister
	presenter presenters.ContentPresenterInterface
	logger    *logging.Logger
}

// NewContentHandlers creates a new content handlers instance with required dependencies.
func NewContentHandlers(lister ContentLister, presenter presenters.ContentPresenterInterface) *ContentHandlers {
	return &ContentHandlers{
		lister:    lister,
		presenter: presenter,
		logger:    logging.Default().WithComponent("content_handlers"),
	}
}

// List returns one page of a channel's contents with columns, review levels and permissions.
func (h *ContentHandlers) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body ContentListRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxListRequestBytes))
	if err := decoder.Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.lister.List(ctx, application.CallerFromContext(ctx), body.ToListRequest())
	if err != nil {
		h.writeListError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, h.presenter.ToContentListView(result))
}

func (h *ContentHandlers) writeListError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, application.ErrUnauthorized):
		w.WriteHeader(http.StatusUnauthorized)
	case errors.Is(err, application.ErrSiteNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, application.ErrChannelNotResolved):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, contracts.ErrSiteScopeMismatch):
		writeError(w, http.StatusBadRequest, application.ErrChannelNotResolved.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		h.logger.WithContext(r.Context()).Warn("Content list request aborted", "error", err)
		writeError(w, http.StatusServiceUnavailable, "request aborted")
	default:
		h.logger.WithContext(r.Context()).Error("Content list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
