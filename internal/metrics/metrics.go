package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	EmbeddingRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "q5",
			Name:      "embedding_requests_total",
			Help:      "Total number of embedding provider requests",
		},
		[]string{"provider", "model", "status"},
	)

	EmbeddingRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "q5",
			Name:      "embedding_request_duration_seconds",
			Help:      "Embedding provider request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"provider", "model"},
	)

	IndexedDocumentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "q5",
			Name:      "indexed_documents_total",
			Help:      "Indexing pipeline outcomes per entity type",
		},
		[]string{"entity_type", "outcome"}, // "inserted" / "skipped" / "failed"
	)

	RetrievalQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "q5",
			Name:      "retrieval_queries_total",
			Help:      "Total number of similarity search queries",
		},
		[]string{"status"},
	)

	RetrievalResultCount = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "q5",
			Name:      "retrieval_result_count",
			Help:      "Number of documents returned per retrieval query",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50},
		},
	)
)

var registered bool

// Register registers all pipeline metrics. Must be called once from main.
func Register() {
	if registered {
		return
	}

	prometheus.MustRegister(EmbeddingRequestsTotal)
	prometheus.MustRegister(EmbeddingRequestDuration)
	prometheus.MustRegister(IndexedDocumentsTotal)
	prometheus.MustRegister(RetrievalQueriesTotal)
	prometheus.MustRegister(RetrievalResultCount)

	registered = true
}
