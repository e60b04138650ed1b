package repository

// DashboardCounts totales mostrados en el panel de resumen.
// Se recalculan desde la fuente de datos en cada lectura, nunca se cachean.
type DashboardCounts struct {
	Companies   int
	Menus       int
	Categories  int
	Products    int
	ActiveUsers int
}

// DashboardRepository expone los conteos derivados del panel.
type DashboardRepository interface {
	Counts(companyID string) (*DashboardCounts, error)
}
