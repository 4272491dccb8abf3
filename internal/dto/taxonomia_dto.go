package dto

// Species / breed taxonomy management (/api/especieRaza).

type EspecieRequest struct {
	Nombre string `json:"nombre" validate:"required,min=2,max=50"`
}

type EspecieResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}

type RazaRequest struct {
	Nombre    string `json:"nombre"    validate:"required,min=2,max=50"`
	EspecieID string `json:"especieId" validate:"required,uuid"`
}

type RazaResponse struct {
	ID        string `json:"id"`
	Nombre    string `json:"nombre"`
	EspecieID string `json:"especieId"`
	Especie   string `json:"especie"`
}
