// Package metrics счётчики Prometheus для ядра бота.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RegistrationsCompleted количество успешно сохранённых анкет
	RegistrationsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "matchbot",
		Subsystem: "dialog",
		Name:      "registrations_completed_total",
		Help:      "Number of successfully committed registrations.",
	})

	// RegistrationConflicts попытки повторной регистрации, отклонённые хранилищем
	RegistrationConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "matchbot",
		Subsystem: "dialog",
		Name:      "registration_conflicts_total",
		Help:      "Number of duplicate registration attempts rejected by the store.",
	})

	// StoreErrors ошибки обращений к хранилищу анкет
	StoreErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "matchbot",
		Subsystem: "store",
		Name:      "errors_total",
		Help:      "Number of failed profile store calls.",
	})

	// MatchDecisions решения по кандидатам с разбивкой по выбору
	MatchDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "matchbot",
		Subsystem: "matching",
		Name:      "decisions_total",
		Help:      "Number of recorded match decisions by choice.",
	}, []string{"choice"})
)
