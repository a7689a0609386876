package handlers

import "github.com/prometheus/client_golang/prometheus"

var (
	articlesCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "articles_created_total",
		Help: "Total number of articles added to the in-memory store.",
	})
	articlesDeleted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "articles_deleted_total",
		Help: "Total number of articles removed from the in-memory store.",
	})
)

func init() {
	prometheus.MustRegister(articlesCreated, articlesDeleted)
}
