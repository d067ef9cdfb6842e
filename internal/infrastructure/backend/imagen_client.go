package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/jhoicas/empresas-admin/internal/application/dto"
	"github.com/jhoicas/empresas-admin/internal/application/ports"
	"github.com/jhoicas/empresas-admin/internal/domain/entity"
)

var _ ports.ImagenGateway = (*Client)(nil)

const (
	// DefaultUploadPreset valor por defecto del campo upload_presets.
	DefaultUploadPreset = "buenSabor"

	uploadPath    = "/imagenes/upload"
	deleteImgPath = "/imagenes/deleteImg"

	uploadField = "uploads"
	presetField = "upload_presets"
)

// Upload envía los archivos como multipart/form-data (un part "uploads" por archivo más
// "upload_presets") y devuelve los descriptores creados.
func (c *Client) Upload(ctx context.Context, files ...ports.UploadFile) ([]entity.Imagen, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("backend: upload: no hay archivos")
	}
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range files {
		part, err := w.CreateFormFile(uploadField, f.Name)
		if err != nil {
			return nil, fmt.Errorf("backend: upload: crear part %s: %w", f.Name, err)
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return nil, fmt.Errorf("backend: upload: copiar %s: %w", f.Name, err)
		}
	}
	if err := w.WriteField(presetField, c.preset); err != nil {
		return nil, fmt.Errorf("backend: upload: campo preset: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("backend: upload: cerrar multipart: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, uploadPath, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var out []dto.ImagenDTO
	if err := c.do(req, "upload", &out); err != nil {
		return nil, err
	}
	list := make([]entity.Imagen, 0, len(out))
	for _, d := range out {
		list = append(list, d.ToEntity())
	}
	return list, nil
}

// Delete POST /imagenes/deleteImg?publicId={publicID}&id={id}. La query se arma tal cual,
// sin URL-encoding, y el cuerpo de la respuesta se devuelve sin interpretar.
func (c *Client) Delete(ctx context.Context, publicID, id string) (json.RawMessage, error) {
	req, err := c.newRequest(ctx, http.MethodPost, DeleteImgQuery(publicID, id), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var out json.RawMessage
	if err := c.do(req, "delete", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteImgQuery path + query del borrado de imágenes. Los valores van tal cual salvo los
// bytes que no pueden viajar en la línea del request (espacios, controles, comillas, < >,
// no ASCII), que se escriben como %XX igual que lo hace un navegador. & = # no se tocan.
func DeleteImgQuery(publicID, id string) string {
	return deleteImgPath + "?publicId=" + escapeQueryBytes(publicID) + "&id=" + escapeQueryBytes(id)
}

func escapeQueryBytes(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c <= 0x20, c >= 0x7F, c == '"', c == '\'', c == '<', c == '>':
			b.WriteByte('%')
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&0x0F])
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
