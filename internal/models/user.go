package models

// User es el perfil guardado en el slot "user" tras el login.
// Se trata como bolsa de solo lectura: no se valida su forma.
type User struct {
	IDUsuario int64  `json:"id_usuario,omitempty"`
	Username  string `json:"username"`
	Rol       string `json:"rol"`
	IDSede    *int64 `json:"id_sede,omitempty"`
	Nombres   string `json:"nombres,omitempty"`
	Apellidos string `json:"apellidos,omitempty"`
	Email     string `json:"email,omitempty"`
	Activo    bool   `json:"activo,omitempty"`
}

// DisplayName retorna los nombres del usuario o, si están vacíos, su username.
func (u User) DisplayName() string {
	if u.Nombres != "" {
		return u.Nombres
	}
	return u.Username
}

// Label es el texto del elemento userName: "{nombres o username} ({rol})".
func (u User) Label() string {
	return u.DisplayName() + " (" + u.Rol + ")"
}
