package budgets

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/premiarte/premiarte-api/internal/application/dto"
	"github.com/premiarte/premiarte-api/internal/domain"
	"github.com/premiarte/premiarte-api/internal/domain/entity"
	"github.com/premiarte/premiarte-api/internal/domain/repository"
)

// PricedLine es una línea ya resuelta: producto cargado, precio y monto
// definitivos en centavos. Después de ResolveLines ninguna otra parte del
// flujo vuelve a mirar la forma de entrada.
type PricedLine struct {
	Product     *entity.Product
	Price       int64
	Quantity    int64
	Amount      int64
	Observation string
}

// LoadedLines son líneas ya validadas con su producto cargado. Es el paso
// previo a PriceLines: toda la validación de entrada ocurre acá, antes de que
// el flujo de creación toque al cliente.
type LoadedLines struct {
	lines    []dto.BudgetLineRequest
	products []*entity.Product
}

// LoadLineProducts valida las líneas de entrada y carga sus productos en una
// sola consulta. Si algún id no existe, el error nombra todos los faltantes,
// no solo el primero. Las formas aceptadas:
//
//   - pública {id, quantity}: quantity debe ser positiva.
//   - dashboard {productId, price, amount}: precio y monto no pueden ser
//     negativos.
func LoadLineProducts(lines []dto.BudgetLineRequest, products repository.ProductRepository) (*LoadedLines, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: el presupuesto no tiene productos", domain.ErrInvalidInput)
	}

	ids := make([]int64, 0, len(lines))
	lineIDs := make([]int64, len(lines))
	var badIDs []string
	for i, line := range lines {
		raw := line.ProductID
		if raw == "" {
			raw = line.ID
		}
		id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil || id <= 0 {
			badIDs = append(badIDs, raw)
			continue
		}
		lineIDs[i] = id
		ids = append(ids, id)
	}
	if len(badIDs) > 0 {
		return nil, fmt.Errorf("%w: ids de producto inválidos: %s", domain.ErrInvalidInput, strings.Join(badIDs, ", "))
	}

	found, err := products.GetByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("buscar productos del presupuesto: %w", err)
	}
	byID := make(map[int64]*entity.Product, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}

	var missing []int64
	seen := make(map[int64]bool)
	for _, id := range ids {
		if byID[id] == nil && !seen[id] {
			seen[id] = true
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
		parts := make([]string, len(missing))
		for i, id := range missing {
			parts[i] = strconv.FormatInt(id, 10)
		}
		return nil, fmt.Errorf("%w: productos inexistentes: %s", domain.ErrInvalidInput, strings.Join(parts, ", "))
	}

	loaded := &LoadedLines{lines: lines, products: make([]*entity.Product, len(lines))}
	for i := range lines {
		product := byID[lineIDs[i]]
		loaded.products[i] = product
		line := lines[i]
		if line.Price != nil || line.Amount != nil {
			if (line.Price != nil && *line.Price < 0) || (line.Amount != nil && *line.Amount < 0) {
				return nil, fmt.Errorf("%w: precio o monto negativo para el producto %d", domain.ErrInvalidInput, product.ID)
			}
		} else if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: cantidad inválida para el producto %d", domain.ErrInvalidInput, product.ID)
		}
	}
	return loaded, nil
}

// PriceLines fija precio, cantidad y monto de líneas ya validadas:
//
//   - pública {id, quantity}: el precio sale del catálogo según el tipo de
//     cliente (wholesale usa la lista mayorista, cualquier otro la minorista)
//     y amount = price × quantity.
//   - dashboard {productId, price, amount}: precio y monto se respetan tal
//     cual; si falta quantity se deriva como round(amount/price), o 1 cuando
//     el precio es cero.
func PriceLines(loaded *LoadedLines, customerType string) []PricedLine {
	out := make([]PricedLine, 0, len(loaded.lines))
	for i, line := range loaded.lines {
		product := loaded.products[i]
		priced := PricedLine{Product: product, Observation: line.Observation}

		if line.Price != nil || line.Amount != nil {
			// Forma dashboard: el frente manda precio y monto en centavos.
			if line.Price != nil {
				priced.Price = *line.Price
			}
			if line.Amount != nil {
				priced.Amount = *line.Amount
			}
			switch {
			case line.Quantity > 0:
				priced.Quantity = line.Quantity
			case priced.Price > 0:
				priced.Quantity = int64(math.Round(float64(priced.Amount) / float64(priced.Price)))
				if priced.Quantity < 1 {
					priced.Quantity = 1
				}
			default:
				priced.Quantity = 1
			}
			if line.Amount == nil {
				priced.Amount = priced.Price * priced.Quantity
			}
		} else {
			// Forma pública: el servidor es el único que fija el precio.
			priced.Quantity = line.Quantity
			if customerType == entity.CustomerTypeWholesale {
				priced.Price = product.WholesalePrice
			} else {
				priced.Price = product.RetailPrice
			}
			priced.Amount = priced.Price * priced.Quantity
		}

		out = append(out, priced)
	}
	return out
}

// ResolveLines valida, carga y fija precios en un solo paso. La creación de
// presupuestos usa los dos pasos por separado para validar antes de resolver
// al cliente.
func ResolveLines(lines []dto.BudgetLineRequest, customerType string, products repository.ProductRepository) ([]PricedLine, error) {
	loaded, err := LoadLineProducts(lines, products)
	if err != nil {
		return nil, err
	}
	return PriceLines(loaded, customerType), nil
}

// TotalAmount suma los montos de las líneas resueltas.
func TotalAmount(lines []PricedLine) int64 {
	var total int64
	for _, l := range lines {
		total += l.Amount
	}
	return total
}
