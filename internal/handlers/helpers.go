package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"restaurant_dashboard/internal/middlewares"
	"restaurant_dashboard/internal/responses"
	"restaurant_dashboard/internal/services"
	"restaurant_dashboard/internal/utils"
)

// statusFor maps workflow errors onto HTTP status codes.
func statusFor(err error) int {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrRestaurantNotFound),
		errors.Is(err, services.ErrDraftNotFound),
		errors.Is(err, services.ErrDescriptionNotFound),
		errors.Is(err, services.ErrProfileNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrConfirmationRequired):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials), services.IsSessionError(err):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrEmailTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// fail renders err and attaches it to the context so gin's logger prints it.
func fail(c *gin.Context, err error, message string) {
	_ = c.Error(err)
	responses.Fail(c, statusFor(err), err, message)
}

func currentUser(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middlewares.UserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
	}
	return id, ok
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := utils.ParseUUID(c.Param(name))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid restaurant ID")
		return uuid.Nil, false
	}
	return id, true
}

// formFiles collects the files posted under field or field[].
func formFiles(c *gin.Context, field string) ([]services.File, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}
	headers := append(form.File[field], form.File[field+"[]"]...)
	files := make([]services.File, 0, len(headers))
	for _, fh := range headers {
		files = append(files, uploadedFile(fh))
	}
	return files, nil
}

// formFile returns the single file posted under field, or nil if absent.
func formFile(c *gin.Context, field string) (*services.File, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	f := uploadedFile(fh)
	return &f, nil
}

func uploadedFile(fh *multipart.FileHeader) services.File {
	contentType := fh.Header.Get("Content-Type")
	if contentType == "" || strings.HasPrefix(contentType, "application/octet-stream") {
		contentType = sniffContentType(fh)
	}
	return services.File{
		Name:        fh.Filename,
		ContentType: contentType,
		Size:        fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}

// sniffContentType detects the media type from the file's leading bytes.
func sniffContentType(fh *multipart.FileHeader) string {
	f, err := fh.Open()
	if err != nil {
		return ""
	}
	defer f.Close()

	mt, err := mimetype.DetectReader(f)
	if err != nil {
		return ""
	}
	return mt.String()
}
