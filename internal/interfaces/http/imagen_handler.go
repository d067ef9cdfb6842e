package http

import (
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/empresas-admin/internal/application/dto"
	"github.com/jhoicas/empresas-admin/internal/application/usecase"
)

// ImagenHandler upload y borrado de imágenes.
type ImagenHandler struct {
	uc *usecase.ImagenUseCase
}

func NewImagenHandler(uc *usecase.ImagenUseCase) *ImagenHandler {
	return &ImagenHandler{uc: uc}
}

// Upload godoc
// @Summary      Subir imágenes
// @Tags         imagenes
// @Accept       multipart/form-data
// @Produce      json
// @Param        uploads         formData  file    true  "Archivos"
// @Param        upload_presets  formData  string  true  "Preset (carpeta)"
// @Success      200  {array}   dto.ImagenDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /imagenes/upload [post]
func (h *ImagenHandler) Upload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "se esperaba multipart/form-data"})
	}
	headers := form.File["uploads"]
	if len(headers) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "uploads es requerido"})
	}
	var preset string
	if v := form.Value["upload_presets"]; len(v) > 0 {
		preset = v[0]
	}

	files := make([]usecase.ImagenFile, 0, len(headers))
	closers := make([]io.Closer, 0, len(headers))
	defer func() {
		for _, cl := range closers {
			_ = cl.Close()
		}
	}()
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer " + fh.Filename})
		}
		closers = append(closers, f)
		files = append(files, usecase.ImagenFile{Name: fh.Filename, Content: f})
	}

	out, err := h.uc.Upload(c.UserContext(), preset, files)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar imagen
// @Tags         imagenes
// @Produce      json
// @Param        publicId  query  string  true  "Public ID"
// @Param        id        query  int     true  "ID"
// @Success      200  {object}  dto.DeleteImagenResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /imagenes/deleteImg [post]
func (h *ImagenHandler) Delete(c *fiber.Ctx) error {
	publicID := c.Query("publicId")
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if publicID == "" || err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "publicId e id son requeridos"})
	}
	out, err := h.uc.Delete(c.UserContext(), publicID, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
