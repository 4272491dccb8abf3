package dto

// Disease taxonomy management (/api/enfermedades).

type TipoEnfermedadRequest struct {
	Nombre string `json:"nombre" validate:"required,min=2,max=100"`
}

type TipoEnfermedadResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}

type EnfermedadRequest struct {
	Nombre      string  `json:"nombre"      validate:"required,min=2,max=100"`
	TipoID      string  `json:"tipoId"      validate:"required,uuid"`
	Descripcion *string `json:"descripcion" validate:"omitempty,max=2000"`
}

type EnfermedadResponse struct {
	ID          string  `json:"id"`
	Nombre      string  `json:"nombre"`
	TipoID      string  `json:"tipoId"`
	Tipo        string  `json:"tipo"`
	Descripcion *string `json:"descripcion"`
}
