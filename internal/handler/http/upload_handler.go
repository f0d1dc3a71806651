package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/portfolio/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/portfolio/internal/usecase/contract"
)

type UploadHandler struct {
	mediaUsecase usecasecontract.IMediaUseCase
}

func NewUploadHandler(mediaUsecase usecasecontract.IMediaUseCase) *UploadHandler {
	return &UploadHandler{mediaUsecase: mediaUsecase}
}

// UploadImage POST /upload with a multipart "file" field.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Unable to read uploaded file")
		return
	}
	defer file.Close()

	url, err := h.mediaUsecase.UploadImage(c.Request.Context(), fileHeader.Filename, fileHeader.Size, file)
	if err != nil {
		HandleUsecaseError(c, err, "Failed to upload image")
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.UploadResponse{URL: url})
}
