// Command assetctl herramientas de operación del ledger de activos: migraciones,
// simulación de cronogramas de depreciación y emisión de tokens de acceso.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
