package clients

// Directory is one client directory page as POSTed by the upstream B2B
// source. A nil section means the page did not carry it.
type Directory struct {
	Distributors []DistributorRecord `json:"distributors,omitempty"`
	Stores       []StoreRecord       `json:"stores,omitempty"`
	Clients      []ClientRecord      `json:"clients,omitempty"`
}

// DistributorRecord is one distributor from the feed.
type DistributorRecord struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// StoreRecord is one store from the feed.
type StoreRecord struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	DistributorID *int64 `json:"distributor_id,omitempty"`
}

// ClientRecord is one client account from the feed.
type ClientRecord struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	StoreID  *int64 `json:"store_id,omitempty"`
	Role     string `json:"roles"`
}
