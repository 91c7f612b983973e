package session

// Páginas de inicio por rol del backend HCE.
var dashboards = map[string]string{
	"paciente":        "/dashboard/patient",
	"admisionista":    "/dashboard/admissions",
	"medico":          "/dashboard/doctor",
	"historificacion": "/dashboard/records",
	"admin":           "/dashboard/admin",
}

// DashboardPath retorna la página de inicio del rol; un rol desconocido va a login.
func DashboardPath(rol string) string {
	if path, ok := dashboards[rol]; ok {
		return path
	}
	return DefaultLoginPath
}
