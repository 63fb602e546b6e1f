package koios

// Tip is one row of the /tip response.
type Tip struct {
	Hash      string `json:"hash"`
	EpochNo   int    `json:"epoch_no"`
	AbsSlot   int64  `json:"abs_slot"`
	EpochSlot int64  `json:"epoch_slot"`
	BlockNo   int64  `json:"block_no"`
	BlockTime int64  `json:"block_time"`
}

// Totals is one row of the /totals response. Amounts are lovelace strings.
type Totals struct {
	EpochNo     int    `json:"epoch_no"`
	Circulation string `json:"circulation"`
	Treasury    string `json:"treasury"`
	Reward      string `json:"reward"`
	Supply      string `json:"supply"`
	Reserves    string `json:"reserves"`
}

// TipResponse is the body of /tip.
type TipResponse []Tip

// TotalsResponse is the body of /totals.
type TotalsResponse []Totals
