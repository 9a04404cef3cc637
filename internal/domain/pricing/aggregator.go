package pricing

import "github.com/shopspring/decimal"

// Aggregate corre el evaluador sobre cada canal habilitado y consolida el
// portafolio. Retorna los resultados por canal en el orden de entrada y el
// resumen cruzado.
//
// Reglas:
//   - Canales con Enabled == false quedan fuera de la lista y de todo agregado.
//   - BestChannel/WorstChannel se deciden por NetProfit estrictamente mayor/menor;
//     en empate exacto gana el canal que aparece primero en el orden de entrada
//     (determinista, nunca "gana el último").
//   - AverageMarginPercent es la media aritmética del margen de TODOS los canales
//     habilitados, pérdidas incluidas: es una señal de salud del portafolio, no
//     una cifra de mejor caso.
//   - TotalPotentialProfit suma max(0, NetProfit): el upside si solo se usan los
//     canales rentables. No confundir con el total real, que puede ser negativo.
//   - Sin canales habilitados el resultado es válido (no error): resumen en cero
//     y Health = HealthNoData, distinto de pérdida — sin datos no se afirma nada.
//   - Un error de configuración (tipo de canal desconocido) aborta el agregado
//     completo; nunca se retorna un Summary parcialmente poblado.
func Aggregate(basis CostBasis, configs []ChannelConfig) ([]Calculation, Summary, error) {
	calcs := make([]Calculation, 0, len(configs))
	for _, cfg := range configs {
		if !cfg.Enabled {
			continue
		}
		calc, err := Evaluate(basis, cfg)
		if err != nil {
			return nil, Summary{}, err
		}
		calcs = append(calcs, calc)
	}

	if len(calcs) == 0 {
		return calcs, Summary{
			AverageMarginPercent: decimal.Zero,
			TotalPotentialProfit: decimal.Zero,
			Health:               HealthNoData,
		}, nil
	}

	var (
		profitable int
		marginSum  = decimal.Zero
		potential  = decimal.Zero
		bestIdx    = 0
		worstIdx   = 0
	)
	for i, calc := range calcs {
		if calc.IsProfitable {
			profitable++
		}
		marginSum = marginSum.Add(calc.ProfitMarginPercent)
		if calc.NetProfit.IsPositive() {
			potential = potential.Add(calc.NetProfit)
		}
		// Comparación estricta: en empate se conserva el índice anterior (primero gana).
		if calc.NetProfit.GreaterThan(calcs[bestIdx].NetProfit) {
			bestIdx = i
		}
		if calc.NetProfit.LessThan(calcs[worstIdx].NetProfit) {
			worstIdx = i
		}
	}

	avg := marginSum.Div(decimal.NewFromInt(int64(len(calcs)))).RoundBank(2)
	return calcs, Summary{
		ProfitableChannelCount: profitable,
		AverageMarginPercent:   avg,
		BestChannel:            &calcs[bestIdx],
		WorstChannel:           &calcs[worstIdx],
		TotalPotentialProfit:   potential.RoundBank(2),
		Health:                 Classify(avg),
	}, nil
}
