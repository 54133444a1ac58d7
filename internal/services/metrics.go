// Package services – domain metrics
//
// Prometheus counters for the marketplace flow: how many request notices
// reached executors, how many offers came in, how many deals closed. The
// HTTP-level metrics live in the middleware package; these count business
// events regardless of which surface triggered them.
package services

import "github.com/prometheus/client_golang/prometheus"

var (
	// dispatchDeliveries counts per-executor delivery attempts during a
	// request broadcast, labelled by outcome:
	//   delivered   – the notice reached the executor's channel
	//   failed      – the send was attempted and the transport refused it
	//   unaddressed – the executor has neither a bound user nor a direct channel
	dispatchDeliveries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "broker_dispatch_deliveries_total",
			Help: "Request notices dispatched to executors, by outcome.",
		},
		[]string{"outcome"},
	)

	// offersSubmitted counts offers that passed validation and were stored.
	offersSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "broker_offers_submitted_total",
			Help: "Offers submitted by executors.",
		},
	)

	// dealsClosed counts accepted offers that produced a deal.
	dealsClosed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "broker_deals_closed_total",
			Help: "Deals created by accepting an offer.",
		},
	)
)

func init() {
	prometheus.MustRegister(dispatchDeliveries, offersSubmitted, dealsClosed)
}
