package entity

// BudgetItem es una línea de un presupuesto. Price es la foto del precio
// unitario al momento de cotizar; RetailPrice y WholesalePrice se guardan
// como snapshot de auditoría aunque solo uno haya sido aplicado.
type BudgetItem struct {
	ID             int64
	BudgetID       string
	ProductID      int64
	Price          int64 // centavos
	Quantity       int64
	Amount         int64 // centavos; price × quantity salvo override del dashboard
	RetailPrice    int64
	WholesalePrice int64
	Observation    string

	Product *Product
}
