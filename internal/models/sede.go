package models

// Sede representa una sede física (clínica) de la red HCE.
type Sede struct {
	IDSede    int64  `json:"id_sede,omitempty"`
	Nombre    string `json:"nombre"`
	Ciudad    string `json:"ciudad"`
	Direccion string `json:"direccion,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
	Email     string `json:"email,omitempty"`
}

// Badge es el texto del badge de sede: "{nombre} - {ciudad}".
func (s Sede) Badge() string {
	return s.Nombre + " - " + s.Ciudad
}
