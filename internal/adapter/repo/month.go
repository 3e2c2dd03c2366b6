package repo

import "time"

// Dashboard chart labels use French month abbreviations.
var monthLabels = [...]string{
	"Jan", "Fév", "Mar", "Avr", "Mai", "Juin",
	"Juil", "Août", "Sep", "Oct", "Nov", "Déc",
}

func monthLabel(m time.Month) string { return monthLabels[m-1] }
