package constants

// Redis key prefixes and formats.
// Naming convention: app:{module}:{entity}:{unique_id}
const (
	// AppPrefix is the shared application prefix for all Redis keys.
	AppPrefix = "app"

	// ImportModulePrefix covers the bulk-import module.
	ImportModulePrefix = "import"

	// EntitySnapshotEmails is the per-owner set of normalized emails.
	EntitySnapshotEmails = "snapshot_emails"
	// EntitySnapshotPhones is the per-owner set of normalized phones.
	EntitySnapshotPhones = "snapshot_phones"

	// KeySnapshotEmails holds an owner's known normalized emails (SET).
	// Format: app:import:snapshot_emails:{ownerID}
	KeySnapshotEmails = AppPrefix + ":" + ImportModulePrefix + ":" + EntitySnapshotEmails + ":%s"

	// KeySnapshotPhones holds an owner's known normalized phones (SET).
	// Format: app:import:snapshot_phones:{ownerID}
	KeySnapshotPhones = AppPrefix + ":" + ImportModulePrefix + ":" + EntitySnapshotPhones + ":%s"
)
