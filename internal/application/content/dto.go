package content

// CreatePageRequest carries the admin "new page" form
type CreatePageRequest struct {
	Slug    string `validate:"required,max=100"`
	Title   string `validate:"required,max=200"`
	Content string
}

// UpdatePageRequest carries the admin "edit page" form
type UpdatePageRequest struct {
	Slug    string `validate:"required,max=100"`
	Title   string `validate:"required,max=200"`
	Content string
}
