package dto

const (
	EventCollectionCreated    = "collection_created"
	EventCollectionUpdated    = "collection_updated"
	EventCollectionDeleted    = "collection_deleted"
	EventCollectionsReordered = "collections_reordered"

	EventSubcollectionCreated    = "subcollection_created"
	EventSubcollectionUpdated    = "subcollection_updated"
	EventSubcollectionDeleted    = "subcollection_deleted"
	EventSubcollectionsReordered = "subcollections_reordered"

	EventProductCreated = "product_created"
	EventProductUpdated = "product_updated"
	EventProductDeleted = "product_deleted"
)

type KafkaMessage struct {
	EventType string      `json:"event_type"`
	Data      interface{} `json:"data"`
}

type DeletedEntity struct {
	ID       int64 `json:"id"`
	ParentID int64 `json:"parent_id,omitempty"`
}

type ReorderedEntities struct {
	ParentID   int64   `json:"parent_id,omitempty"`
	OrderedIDs []int64 `json:"ordered_ids"`
}
