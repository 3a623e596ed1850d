package upstream

// Endpoint names double as metric attributes and log fields.
const (
	EndpointElectionStatus      = "election_status"
	EndpointAdminElectionStatus = "admin_election_status"
	EndpointTop3                = "towns_top3"
	EndpointTowns               = "towns"
	EndpointSearchTowns         = "towns_search"
	EndpointAdminTowns          = "admin_towns"
	EndpointCreateTown          = "admin_towns_create"
	EndpointDeleteAdmin         = "admin_delete"
	EndpointToggleAdmin         = "admin_toggle"
	EndpointVisitorStats        = "admin_visitor_stats"
)

const (
	pathElectionStatus      = "/election/status"
	pathAdminElectionStatus = "/admin/election/status"
	pathTop3                = "/towns/top-3"
	pathTowns               = "/towns"
	pathSearchTowns         = "/towns/search"
	pathAdminTowns          = "/admin/towns"
	pathAdmins              = "/admin/admins/"
	pathVisitorStats        = "/admin/visitors/stats"
)

const (
	// maxBodyBytes caps how much of an upstream response we buffer.
	maxBodyBytes = 4 << 20

	DefaultVisitorDays = 7
	MinVisitorDays     = 1
	MaxVisitorDays     = 90
)
