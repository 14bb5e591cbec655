package constants

// Queue names.
const (
	QueueRecordEvents = "cadastre_record_events"
)

// Routing keys.
const (
	RoutingKeyRecordChanged = "cadastre.record.changed"
)

// Exchange the admin CRUD surface publishes record changes to.
const (
	RecordEventsExchange = "cadastre_exchange"
)
