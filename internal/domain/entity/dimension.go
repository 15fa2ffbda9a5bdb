package entity

// Entidades de dimensión: el Toolbox solo proyecta id + nombre para
// presentación; ninguna regla de negocio depende de su estructura interna.

// Salesperson vendedor (ods_hds_salesperson).
type Salesperson struct {
	ID   string
	Name string
}

// Customer cliente (ods_hds_customer).
type Customer struct {
	CustomerNo int64
	Name       string
}

// Vendor proveedor (ods_hds_vendor).
type Vendor struct {
	VndNo int64
	Name  string
}
