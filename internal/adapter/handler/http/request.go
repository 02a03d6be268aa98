package http

// SubmitRequest is the form accepted by POST /work.
type SubmitRequest struct {
	Date        string `form:"date" query:"date" validate:"required,datetime=2006-01-02"`
	Description string `form:"description" query:"description" validate:"max=4000"`
	Guide       string `form:"guide" query:"guide" validate:"max=4000"`
	Status      string `form:"status" query:"status" validate:"max=255"`
}

// ModifyRequest is the form accepted by POST /changewi.
type ModifyRequest struct {
	ID          string `form:"id" query:"id" validate:"required,uuid"`
	Description string `form:"description" query:"description" validate:"max=4000"`
	Status      string `form:"status" query:"status" validate:"max=255"`
}

// IDRequest carries a single work item id (/archive, /modify, /claim).
type IDRequest struct {
	ID string `form:"id" query:"id" validate:"required,uuid"`
}

// RetrieveRequest selects active or archived items.
type RetrieveRequest struct {
	Type string `query:"type" validate:"required"`
}
