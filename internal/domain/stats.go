package domain

type EntityCounts struct {
	Clients        int
	Projects       int
	TeamMembers    int
	ActiveProjects int
}

type DashboardStats struct {
	EntityCounts
	TotalReceived  float64
	TotalSent      float64
	RecentPayments []*PaymentTransaction
}
