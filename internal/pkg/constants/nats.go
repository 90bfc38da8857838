package constants

// NATS Subjects
const (
	// Published after a pending account completes its first verification
	SubjectAccountRegistered = "auth.account.registered"
	// Published after an account switches role
	SubjectRoleChanged = "auth.role.changed"
)
