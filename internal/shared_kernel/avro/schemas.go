package avro

const (
	tagTypeSchema = `{
		"type": "record",
		"name": "TagType",
		"namespace": "tagback",
		"fields": [
			{"name": "id", "type": "string"},
			{"name": "slug", "type": "string"},
			{"name": "name", "type": "string"},
			{"name": "is_active", "type": "boolean"},
			{"name": "field_count", "type": "int"},
			{"name": "sort_order", "type": "int"},
			{"name": "created_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
			{"name": "updated_at", "type": {"type": "long", "logicalType": "timestamp-millis"}}
		]
	}`

	itemSchema = `{
		"type": "record",
		"name": "Item",
		"namespace": "tagback",
		"fields": [
			{"name": "id", "type": "string"},
			{"name": "owner_id", "type": "string"},
			{"name": "tag_type_id", "type": "string"},
			{"name": "name", "type": "string"},
			{"name": "is_active", "type": "boolean"},
			{"name": "created_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
			{"name": "updated_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
			{"name": "deleted_at", "type": ["null", {"type": "long", "logicalType": "timestamp-millis"}], "default": null}
		]
	}`

	tagSchema = `{
		"type": "record",
		"name": "Tag",
		"namespace": "tagback",
		"fields": [
			{"name": "code", "type": "string"},
			{"name": "status", "type": "string"},
			{"name": "item_id", "type": ["null", "string"], "default": null},
			{"name": "batch", "type": ["null", "string"], "default": null},
			{"name": "scan_count", "type": "long"},
			{"name": "issued_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
			{"name": "claimed_at", "type": ["null", {"type": "long", "logicalType": "timestamp-millis"}], "default": null}
		]
	}`

	tagScanSchema = `{
		"type": "record",
		"name": "TagScan",
		"namespace": "tagback",
		"fields": [
			{"name": "id", "type": "string"},
			{"name": "code", "type": "string"},
			{"name": "item_id", "type": "string"},
			{"name": "kind", "type": "string"},
			{"name": "latitude", "type": ["null", "double"], "default": null},
			{"name": "longitude", "type": ["null", "double"], "default": null},
			{"name": "scanned_at", "type": {"type": "long", "logicalType": "timestamp-millis"}}
		]
	}`

	checklistSubmissionSchema = `{
		"type": "record",
		"name": "ChecklistSubmission",
		"namespace": "tagback",
		"fields": [
			{"name": "id", "type": "string"},
			{"name": "item_id", "type": "string"},
			{"name": "code", "type": "string"},
			{"name": "result_count", "type": "int"},
			{"name": "submitted_by", "type": ["null", "string"], "default": null},
			{"name": "submitted_at", "type": {"type": "long", "logicalType": "timestamp-millis"}}
		]
	}`
)
