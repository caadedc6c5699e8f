package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/ledger"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// Formatos de salida de "schedule".
const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

// scheduleRow vista de una fila para YAML; los montos van con dos decimales.
type scheduleRow struct {
	Period         int    `yaml:"period"`
	Date           string `yaml:"date"`
	Amount         string `yaml:"amount"`
	RemainingValue string `yaml:"remaining_value"`
}

func newScheduleCmd(a *app) *cobra.Command {
	var (
		cost, rate, purchaseDate string
		periodType, method       string
		periodLength             int
		output                   string
	)
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Simula el cronograma de depreciación sin persistir nada",
		Example: "  assetctl schedule --cost 12000 --purchase-date 2020-01-01 --rate 10 --period-type year\n" +
			"  assetctl schedule --cost 1000 --purchase-date 2024-01-31 --rate 5 --period-type month -o json",
		RunE: func(cmd *cobra.Command, args []string) error {
			costDec, err := decimal.NewFromString(cost)
			if err != nil {
				return fmt.Errorf("--cost inválido %q: %w", cost, err)
			}
			rateDec, err := decimal.NewFromString(rate)
			if err != nil {
				return fmt.Errorf("--rate inválido %q: %w", rate, err)
			}

			engine := ledger.New(nil, nil, a.log,
				ledger.WithDefaultMethod(entity.DepreciationMethod(a.cfg.Ledger.DefaultMethod)))
			out, err := engine.Preview(dto.SchedulePreviewRequest{
				PurchaseDate: purchaseDate,
				Cost:         costDec,
				Depreciation: dto.DepreciationPolicyRequest{
					Rate:         rateDec,
					PeriodType:   periodType,
					PeriodLength: periodLength,
					Method:       method,
				},
			})
			if err != nil {
				return err
			}
			return renderSchedule(cmd.OutOrStdout(), output, costDec, out.Entries)
		},
	}
	f := cmd.Flags()
	f.StringVar(&cost, "cost", "", "costo de adquisición")
	f.StringVar(&purchaseDate, "purchase-date", "", "fecha de compra YYYY-MM-DD")
	f.StringVar(&rate, "rate", "", "porcentaje por periodo")
	f.StringVar(&periodType, "period-type", "year", "year | month")
	f.IntVar(&periodLength, "period-length", 1, "unidades por periodo")
	f.StringVar(&method, "method", "", "straight_line | declining_balance (por defecto DEPRECIATION_DEFAULT_METHOD)")
	f.StringVarP(&output, "output", "o", outputTable, "table | json | yaml")
	_ = cmd.MarkFlagRequired("cost")
	_ = cmd.MarkFlagRequired("purchase-date")
	_ = cmd.MarkFlagRequired("rate")
	return cmd
}

func renderSchedule(w io.Writer, format string, cost decimal.Decimal, entries []dto.DepreciationEntryResponse) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)

	case outputYAML:
		rows := make([]scheduleRow, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, scheduleRow{
				Period:         e.Period,
				Date:           e.Date,
				Amount:         e.Amount.StringFixed(2),
				RemainingValue: e.RemainingValue.StringFixed(2),
			})
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return err
		}
		return enc.Close()

	case outputTable:
		if len(entries) == 0 {
			_, err := fmt.Fprintln(w, "la política no genera periodos de depreciación")
			return err
		}
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "N°\tFecha\tDepreciación\tValor remanente")
		for _, e := range entries {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", e.Period, e.Date, e.Amount.StringFixed(2), e.RemainingValue.StringFixed(2))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		final := entries[len(entries)-1].RemainingValue
		_, err := fmt.Fprintf(w, "\nPeriodos: %d | Depreciación acumulada: %s | Valor final: %s\n",
			len(entries), cost.Sub(final).StringFixed(2), final.StringFixed(2))
		return err

	default:
		return fmt.Errorf("formato de salida desconocido %q: use table, json o yaml", format)
	}
}
