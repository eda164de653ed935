package menu

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lezzetduragi/menu-service/internal/response"
)

// maxUploadSize caps the in-memory portion of multipart parsing.
const maxUploadSize = 32 << 20 // 32 MiB

// Handler holds HTTP handlers for menu endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new menu Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type itemResponse struct {
	Success bool  `json:"success"`
	Item    *Item `json:"item"`
}

type successResponse struct {
	Success bool `json:"success"`
}

type imageURLResponse struct {
	URL string `json:"url"`
}

type addCategoryRequest struct {
	Name  string            `json:"name" example:"makarnalar"`
	Names map[string]string `json:"names,omitempty"`
}

// GetMenu godoc
//
//	@Summary		Get the full menu
//	@Description	Returns the whole menu document keyed by category name.
//	@Tags			menu
//	@Produce		json
//	@Success		200	{object}	menu.Document
//	@Failure		500	{object}	response.ErrorBody
//	@Router			/menu-items [get]
func (h *Handler) GetMenu(w http.ResponseWriter, r *http.Request) {
	doc, err := h.svc.Menu(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to get menu data")
		return
	}
	response.OK(w, doc)
}

// CreateItem godoc
//
//	@Summary		Add a menu item
//	@Description	Accepts a multipart form with item fields and an optional image file. The server assigns the item id.
//	@Tags			menu
//	@Accept			mpfd
//	@Produce		json
//	@Security		BearerAuth
//	@Param			category			formData	string	true	"Category name"
//	@Param			name				formData	string	true	"Item name"
//	@Param			price				formData	string	true	"Price (₺ prefix added when missing)"
//	@Param			shortDescription	formData	string	false	"Short description"
//	@Param			longDescription		formData	string	false	"Long description"
//	@Param			image				formData	file	false	"Item image"
//	@Success		200	{object}	itemResponse
//	@Failure		400	{object}	response.ErrorBody
//	@Failure		404	{object}	response.ErrorBody
//	@Failure		500	{object}	response.ErrorBody
//	@Router			/menu-items [post]
func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	in, cleanup, err := parseItemForm(r)
	if err != nil {
		response.BadRequest(w, "invalid form data")
		return
	}
	defer cleanup()

	item, err := h.svc.CreateItem(r.Context(), *in)
	if err != nil {
		writeItemError(w, err, "Failed to add item")
		return
	}
	response.OK(w, itemResponse{Success: true, Item: item})
}

// UpdateItem godoc
//
//	@Summary		Update a menu item
//	@Description	Replaces the item with the given id. Without a new image file the existing image is kept; with one, the replaced image object is deleted.
//	@Tags			menu
//	@Accept			mpfd
//	@Produce		json
//	@Security		BearerAuth
//	@Param			category			formData	string	true	"Category name"
//	@Param			id					formData	string	true	"Item id"
//	@Param			name				formData	string	true	"Item name"
//	@Param			price				formData	string	true	"Price"
//	@Param			shortDescription	formData	string	false	"Short description"
//	@Param			longDescription		formData	string	false	"Long description"
//	@Param			image				formData	file	false	"Replacement image"
//	@Success		200	{object}	itemResponse
//	@Failure		400	{object}	response.ErrorBody
//	@Failure		404	{object}	response.ErrorBody
//	@Failure		500	{object}	response.ErrorBody
//	@Router			/menu-items [put]
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	in, cleanup, err := parseItemForm(r)
	if err != nil {
		response.BadRequest(w, "invalid form data")
		return
	}
	defer cleanup()

	item, err := h.svc.UpdateItem(r.Context(), *in)
	if err != nil {
		writeItemError(w, err, "Failed to update item")
		return
	}
	response.OK(w, itemResponse{Success: true, Item: item})
}

// DeleteItem godoc
//
//	@Summary		Delete a menu item
//	@Description	Removes the item and deletes its image object (best-effort).
//	@Tags			menu
//	@Produce		json
//	@Security		BearerAuth
//	@Param			category	query	string	true	"Category name"
//	@Param			id			query	string	true	"Item id"
//	@Success		200	{object}	successResponse
//	@Failure		400	{object}	response.ErrorBody
//	@Failure		404	{object}	response.ErrorBody
//	@Failure		500	{object}	response.ErrorBody
//	@Router			/menu-items [delete]
func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	id := r.URL.Query().Get("id")
	if category == "" || id == "" {
		response.BadRequest(w, "Missing required fields")
		return
	}

	if err := h.svc.DeleteItem(r.Context(), category, id); err != nil {
		writeItemError(w, err, "Failed to delete item")
		return
	}
	response.OK(w, successResponse{Success: true})
}

// AddCategory godoc
//
//	@Summary		Add a category
//	@Description	Creates an empty category. Names are matched by exact string; a duplicate name is rejected.
//	@Tags			menu
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		addCategoryRequest	true	"Category"
//	@Success		201	{object}	successResponse
//	@Failure		400	{object}	response.ErrorBody
//	@Failure		409	{object}	response.ErrorBody
//	@Failure		500	{object}	response.ErrorBody
//	@Router			/categories [post]
func (h *Handler) AddCategory(w http.ResponseWriter, r *http.Request) {
	var req addCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	err := h.svc.AddCategory(r.Context(), req.Name, req.Names)
	if errors.Is(err, ErrMissingFields) {
		response.BadRequest(w, "category name is required")
		return
	}
	if errors.Is(err, ErrCategoryExists) {
		response.Conflict(w, "Category already exists")
		return
	}
	if err != nil {
		response.InternalError(w, "Failed to add category")
		return
	}
	response.Created(w, successResponse{Success: true})
}

// DeleteCategory godoc
//
//	@Summary		Delete a category
//	@Description	Removes the category and deletes every referenced image object (best-effort).
//	@Tags			menu
//	@Produce		json
//	@Security		BearerAuth
//	@Param			name	path	string	true	"Category name"
//	@Success		200	{object}	successResponse
//	@Failure		404	{object}	response.ErrorBody
//	@Failure		500	{object}	response.ErrorBody
//	@Router			/categories/{name} [delete]
func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	err := h.svc.DeleteCategory(r.Context(), name)
	if errors.Is(err, ErrCategoryNotFound) {
		response.NotFound(w, "Category not found")
		return
	}
	if err != nil {
		response.InternalError(w, "Failed to delete category")
		return
	}
	response.OK(w, successResponse{Success: true})
}

// ImageURL godoc
//
//	@Summary		Resolve an image URL
//	@Description	Turns a stored image reference into a fetchable URL (presigned or public, per deployment mode). Fully-qualified URLs pass through unchanged.
//	@Tags			menu
//	@Produce		json
//	@Param			name	query	string	true	"Image filename or URL"
//	@Success		200	{object}	imageURLResponse
//	@Failure		400	{object}	response.ErrorBody
//	@Failure		500	{object}	response.ErrorBody
//	@Router			/images/url [get]
func (h *Handler) ImageURL(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		response.BadRequest(w, "name is required")
		return
	}

	url, err := h.svc.ImageURL(r.Context(), name)
	if err != nil {
		response.InternalError(w, "Failed to resolve image URL")
		return
	}
	response.OK(w, imageURLResponse{URL: url})
}

// parseItemForm reads the multipart submission into an ItemInput. The
// returned cleanup closes the uploaded file, if any.
func parseItemForm(r *http.Request) (*ItemInput, func(), error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, nil, err
	}

	in := &ItemInput{
		Category:         r.FormValue("category"),
		ID:               r.FormValue("id"),
		Name:             r.FormValue("name"),
		Price:            r.FormValue("price"),
		ShortDescription: r.FormValue("shortDescription"),
		LongDescription:  r.FormValue("longDescription"),
	}

	if en := localizedFromForm(r, "En"); en != nil {
		in.Translations = map[string]LocalizedFields{"en": *en}
	}

	cleanup := func() {}
	file, header, err := r.FormFile("image")
	if err == nil {
		in.Image = &ImageUpload{
			Reader:      file,
			Size:        header.Size,
			ContentType: header.Header.Get("Content-Type"),
			Filename:    header.Filename,
		}
		cleanup = func() { file.Close() }
	} else if !errors.Is(err, http.ErrMissingFile) {
		return nil, nil, err
	}

	return in, cleanup, nil
}

// localizedFromForm reads the optional translated fields with the given form
// suffix ("En" → nameEn, shortDescriptionEn, longDescriptionEn).
func localizedFromForm(r *http.Request, suffix string) *LocalizedFields {
	lf := LocalizedFields{
		Name:             r.FormValue("name" + suffix),
		ShortDescription: r.FormValue("shortDescription" + suffix),
		LongDescription:  r.FormValue("longDescription" + suffix),
	}
	if lf.Name == "" && lf.ShortDescription == "" && lf.LongDescription == "" {
		return nil
	}
	return &lf
}

// writeItemError maps service errors to HTTP statuses. Storage failures stay
// generic: detail only reaches server logs.
func writeItemError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, ErrMissingFields):
		response.BadRequest(w, "Missing required fields")
	case errors.Is(err, ErrCategoryNotFound):
		response.NotFound(w, "Category not found")
	case errors.Is(err, ErrItemNotFound):
		response.NotFound(w, "Item not found")
	default:
		response.InternalError(w, fallback)
	}
}
