// Package ledgerv1 is the wire contract of the ledger.v1.LedgerService.
//
// Messages travel as JSON over the Connect protocol. Money is always encoded
// as a decimal string to keep it exact. proto/ledger/v1/ledger.proto
// describes the same contract.
package ledgerv1

type Decimal struct {
	Value string `json:"value"`
}

func (d *Decimal) GetValue() string {
	if d == nil {
		return ""
	}
	return d.Value
}

// Share is what one participant owes. Percentage splits set Percent on
// requests and leave Owed empty, the owed amount is derived on the server.
type Share struct {
	ParticipantId string   `json:"participantId"`
	Owed          *Decimal `json:"owed,omitempty"`
	Percent       *Decimal `json:"percent,omitempty"`
}

type Expense struct {
	ExpenseId   string   `json:"expenseId"`
	GroupId     string   `json:"groupId"`
	Description string   `json:"description"`
	PayerId     string   `json:"payerId"`
	Amount      *Decimal `json:"amount"`
	SplitType   string   `json:"splitType"`
	Shares      []*Share `json:"shares"`
	CreatedAt   string   `json:"createdAt,omitempty"`
}

type Settlement struct {
	From   string   `json:"from"`
	To     string   `json:"to"`
	Amount *Decimal `json:"amount"`
}

type Empty struct{}

type CreateGroupRequest struct {
	Name      string   `json:"name"`
	MemberIds []string `json:"memberIds"`
}

type CreateGroupResponse struct {
	GroupId string `json:"groupId"`
}

type AddMemberRequest struct {
	GroupId       string `json:"groupId"`
	ParticipantId string `json:"participantId"`
}

type RecordExpenseRequest struct {
	GroupId     string   `json:"groupId"`
	Description string   `json:"description"`
	PayerId     string   `json:"payerId"`
	Amount      *Decimal `json:"amount"`
	SplitType   string   `json:"splitType"`
	Shares      []*Share `json:"shares,omitempty"`
}

type RecordExpenseResponse struct {
	ExpenseId string `json:"expenseId"`
}

type ListExpensesRequest struct {
	GroupId string `json:"groupId"`
}

type ListExpensesResponse struct {
	Expenses []*Expense `json:"expenses"`
}

type GroupBalancesRequest struct {
	GroupId string `json:"groupId"`
}

type GroupBalancesResponse struct {
	Settlements []*Settlement `json:"settlements"`
}

type SummaryRequest struct {
	ParticipantId string `json:"participantId"`
}

type SummaryResponse struct {
	YouOwe       *Decimal `json:"youOwe"`
	YouAreOwed   *Decimal `json:"youAreOwed"`
	TotalBalance *Decimal `json:"totalBalance"`
}

type Group struct {
	GroupId   string   `json:"groupId"`
	Name      string   `json:"name"`
	MemberIds []string `json:"memberIds"`
	CreatedAt string   `json:"createdAt,omitempty"`
}

type GetGroupRequest struct {
	GroupId string `json:"groupId"`
}

type GetGroupResponse struct {
	Group *Group `json:"group"`
}

type ListGroupsRequest struct {
	ParticipantId string `json:"participantId"`
}

type ListGroupsResponse struct {
	Groups []*Group `json:"groups"`
}

// Subscription timestamps are RFC 3339 strings.
type Subscription struct {
	SubscriptionId string   `json:"subscriptionId"`
	GroupId        string   `json:"groupId"`
	Name           string   `json:"name"`
	PayerId        string   `json:"payerId"`
	Amount         *Decimal `json:"amount"`
	BillingCycle   string   `json:"billingCycle"`
	NextDueAt      string   `json:"nextDueAt"`
	CreatedAt      string   `json:"createdAt,omitempty"`
}

type CreateSubscriptionRequest struct {
	GroupId      string   `json:"groupId"`
	Name         string   `json:"name"`
	PayerId      string   `json:"payerId"`
	Amount       *Decimal `json:"amount"`
	BillingCycle string   `json:"billingCycle"`
	NextDueAt    string   `json:"nextDueAt"`
}

type CreateSubscriptionResponse struct {
	SubscriptionId string `json:"subscriptionId"`
}

type ListSubscriptionsRequest struct {
	GroupId string `json:"groupId"`
}

type ListSubscriptionsResponse struct {
	Subscriptions []*Subscription `json:"subscriptions"`
}

// ProcessDueSubscriptionsRequest charges everything due at Now, or at the
// server's current time when Now is empty.
type ProcessDueSubscriptionsRequest struct {
	Now string `json:"now,omitempty"`
}

type ProcessDueSubscriptionsResponse struct {
	ExpenseIds []string `json:"expenseIds"`
}
