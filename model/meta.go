package model

// Meta describes the host the report was collected on. Unresolvable
// fields hold NotAvailable rather than empty strings.
type Meta struct {
	Hostname      string `json:"hostname"`
	OS            string `json:"os"`
	Platform      string `json:"platform"`
	KernelVersion string `json:"kernel_version"`
	Architecture  string `json:"architecture"`
	Uptime        string `json:"uptime"`
	CollectedAt   string `json:"collected_at"`
}
