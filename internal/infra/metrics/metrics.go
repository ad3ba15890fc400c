// Package metrics exposes listing and engagement counters to Prometheus.
package metrics

import (
	"strconv"

	"shopseva/internal/domain/entity"
	"shopseva/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "shopseva"

// Recorder implements service.MetricsRecorder on a Prometheus registry.
type Recorder struct {
	submitted   prometheus.Counter
	transitions *prometheus.CounterVec
	deleted     prometheus.Counter
	likes       *prometheus.CounterVec
	reviews     *prometheus.CounterVec
	mirror      *prometheus.CounterVec
	projected   *prometheus.CounterVec
}

// NewRegistry returns a registry preloaded with the Go and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// NewRecorder registers the domain counters on reg.
func NewRecorder(reg *prometheus.Registry) service.MetricsRecorder {
	r := &Recorder{
		submitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shops_submitted_total",
			Help:      "Listings submitted for moderation.",
		}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shop_transitions_total",
			Help:      "Moderation transitions by target status.",
		}, []string{"status"}),
		deleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shops_deleted_total",
			Help:      "Listings removed by an administrator.",
		}),
		likes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shop_likes_total",
			Help:      "Like and unlike actions that changed a counter.",
		}, []string{"action"}),
		reviews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shop_reviews_total",
			Help:      "Reviews submitted by rating.",
		}, []string{"rating"}),
		mirror: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "listing_mirror_lookups_total",
			Help:      "Listing mirror lookups by result.",
		}, []string{"result"}),
		projected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_projected_total",
			Help:      "Moderation events consumed by the worker by type and outcome.",
		}, []string{"type", "outcome"}),
	}
	reg.MustRegister(r.submitted, r.transitions, r.deleted, r.likes, r.reviews, r.mirror, r.projected)

	return r
}

func (r *Recorder) ShopSubmitted() {
	r.submitted.Inc()
}

func (r *Recorder) ShopTransitioned(to entity.ModerationStatus) {
	r.transitions.WithLabelValues(to.String()).Inc()
}

func (r *Recorder) ShopDeleted() {
	r.deleted.Inc()
}

func (r *Recorder) LikeChanged(delta int) {
	switch {
	case delta > 0:
		r.likes.WithLabelValues("like").Inc()
	case delta < 0:
		r.likes.WithLabelValues("unlike").Inc()
	}
}

func (r *Recorder) ReviewSubmitted(rating int) {
	r.reviews.WithLabelValues(strconv.Itoa(rating)).Inc()
}

func (r *Recorder) MirrorLookup(hit bool) {
	if hit {
		r.mirror.WithLabelValues("hit").Inc()

		return
	}
	r.mirror.WithLabelValues("miss").Inc()
}

func (r *Recorder) EventProjected(eventType string, ok bool) {
	outcome := "ok"
	if !ok {
		outcome = "error"
	}
	r.projected.WithLabelValues(eventType, outcome).Inc()
}
