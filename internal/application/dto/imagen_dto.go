package dto

import "github.com/jhoicas/empresas-admin/internal/domain/entity"

// ImagenDTO descriptor JSON devuelto por /imagenes/upload.
type ImagenDTO struct {
	ID        int64  `json:"id"`
	PublicID  string `json:"publicId"`
	Name      string `json:"name"`
	URL       string `json:"url"`
	Eliminado bool   `json:"eliminado"`
}

// DeleteImagenResponse cuerpo devuelto por /imagenes/deleteImg.
type DeleteImagenResponse struct {
	PublicID string `json:"publicId"`
	ID       int64  `json:"id"`
	Result   string `json:"result"`
}

func ImagenFromEntity(i *entity.Imagen) ImagenDTO {
	return ImagenDTO{
		ID:        i.ID,
		PublicID:  i.PublicID,
		Name:      i.Name,
		URL:       i.URL,
		Eliminado: i.Eliminado,
	}
}

func (d ImagenDTO) ToEntity() entity.Imagen {
	return entity.Imagen{
		ID:        d.ID,
		PublicID:  d.PublicID,
		Name:      d.Name,
		URL:       d.URL,
		Eliminado: d.Eliminado,
	}
}
