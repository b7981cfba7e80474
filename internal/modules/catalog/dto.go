package catalog

type CreateServiceRequest struct {
	Slug        string `json:"slug" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type UpdateServiceRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
}

type UpsertDetailRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	CoverImage  string   `json:"cover_image"`
	Gallery     []string `json:"gallery"`
	Videos      []string `json:"videos"`
}

type CreatePackageRequest struct {
	Name      string   `json:"name" binding:"required"`
	Price     string   `json:"price" binding:"required"`
	Features  []string `json:"features"`
	Highlight bool     `json:"highlight"`
	SortOrder int      `json:"sort_order"`
}

type UpdatePackageRequest struct {
	Name      *string   `json:"name,omitempty"`
	Price     *string   `json:"price,omitempty"`
	Features  *[]string `json:"features,omitempty"`
	Highlight *bool     `json:"highlight,omitempty"`
	SortOrder *int      `json:"sort_order,omitempty"`
}

type GalleryRequest struct {
	Images []string `json:"images" binding:"required"`
}
