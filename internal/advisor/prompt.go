package advisor

import (
	"fmt"
	"strings"

	"github.com/extracto-dev/extracto/internal/model"
)

// systemPrompt sets the advisor's role for every request.
const systemPrompt = "Eres un experto en finanzas personales de hogares y familias."

// promptTemplate encodes the fixed assumptions of the analysis: a 3-month
// observation window, negative values are expenses, recurrence 3 means a
// fixed expense, focus on the 10 largest expenses, a 2-month reduction plan
// and a 5-year investment projection.
const promptTemplate = `En el siguiente cuadro hay un resumen de gastos de 3 meses. La primera columna es la descripción del gasto, la segunda el monto y la tercera la frecuencia.
Los valores negativos son gastos.
En base a la recurrencia se puede inferir que los gastos que se repiten 3 veces son fijos y el resto pueden o no ser variables, dependerá de la descripción del gasto.
Quiero que des una recomendación de finanzas personales, teniendo en cuenta que los gastos fijos son difíciles de reducir y entrarían en un plan agresivo de reducción, y los gastos variables sí se pueden bajar tomando medidas para ahorrar.
Enfoquémonos en los 10 gastos mayores.
Los ingresos mensuales son de %d pesos colombianos.
Además quiero un plan estructurado a 2 meses para empezar a reducir gastos variables, cómo se vería ese ahorro proyectado en el tiempo, y una proyección de cómo se vería el ahorro si se pone en un fondo de inversión de alta rentabilidad en un periodo de 5 años.
El output de tu respuesta debe ser un documento listo para convertir a PDF con un formato bonito y legible.

%s`

// BuildPrompt renders the advisory prompt for a summary table.
func BuildPrompt(rows []model.SummaryRow, monthlyIncome int64) string {
	return fmt.Sprintf(promptTemplate, monthlyIncome, formatSummary(rows))
}

// formatSummary serializes summary rows as an aligned text table.
func formatSummary(rows []model.SummaryRow) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-40s %15s %12s\n", "descripción", "valor", "recurrencia")
	for _, r := range rows {
		fmt.Fprintf(&b, "%-40s %15s %12d\n", r.Description, r.Total.StringFixed(2), r.Recurrence)
	}
	return b.String()
}
