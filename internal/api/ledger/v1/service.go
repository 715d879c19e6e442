package ledgerv1

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

const LedgerServiceName = "ledger.v1.LedgerService"

const (
	LedgerServiceCreateGroupProcedure   = "/ledger.v1.LedgerService/CreateGroup"
	LedgerServiceAddMemberProcedure     = "/ledger.v1.LedgerService/AddMember"
	LedgerServiceRecordExpenseProcedure = "/ledger.v1.LedgerService/RecordExpense"
	LedgerServiceListExpensesProcedure  = "/ledger.v1.LedgerService/ListExpenses"
	LedgerServiceGroupBalancesProcedure = "/ledger.v1.LedgerService/GroupBalances"
	LedgerServiceSummaryProcedure       = "/ledger.v1.LedgerService/Summary"

	LedgerServiceGetGroupProcedure                = "/ledger.v1.LedgerService/GetGroup"
	LedgerServiceListGroupsProcedure              = "/ledger.v1.LedgerService/ListGroups"
	LedgerServiceCreateSubscriptionProcedure      = "/ledger.v1.LedgerService/CreateSubscription"
	LedgerServiceListSubscriptionsProcedure       = "/ledger.v1.LedgerService/ListSubscriptions"
	LedgerServiceProcessDueSubscriptionsProcedure = "/ledger.v1.LedgerService/ProcessDueSubscriptions"
)

type LedgerServiceHandler interface {
	CreateGroup(context.Context, *connect.Request[CreateGroupRequest]) (*connect.Response[CreateGroupResponse], error)
	AddMember(context.Context, *connect.Request[AddMemberRequest]) (*connect.Response[Empty], error)
	RecordExpense(context.Context, *connect.Request[RecordExpenseRequest]) (*connect.Response[RecordExpenseResponse], error)
	ListExpenses(context.Context, *connect.Request[ListExpensesRequest]) (*connect.Response[ListExpensesResponse], error)
	GroupBalances(context.Context, *connect.Request[GroupBalancesRequest]) (*connect.Response[GroupBalancesResponse], error)
	Summary(context.Context, *connect.Request[SummaryRequest]) (*connect.Response[SummaryResponse], error)
	GetGroup(context.Context, *connect.Request[GetGroupRequest]) (*connect.Response[GetGroupResponse], error)
	ListGroups(context.Context, *connect.Request[ListGroupsRequest]) (*connect.Response[ListGroupsResponse], error)
	CreateSubscription(context.Context, *connect.Request[CreateSubscriptionRequest]) (*connect.Response[CreateSubscriptionResponse], error)
	ListSubscriptions(context.Context, *connect.Request[ListSubscriptionsRequest]) (*connect.Response[ListSubscriptionsResponse], error)
	ProcessDueSubscriptions(context.Context, *connect.Request[ProcessDueSubscriptionsRequest]) (*connect.Response[ProcessDueSubscriptionsResponse], error)
}

// NewLedgerServiceHandler builds an HTTP handler serving every procedure of
// the service. It returns the path to mount the handler on.
func NewLedgerServiceHandler(svc LedgerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)

	handlers := map[string]http.Handler{
		LedgerServiceCreateGroupProcedure:   connect.NewUnaryHandler(LedgerServiceCreateGroupProcedure, svc.CreateGroup, opts...),
		LedgerServiceAddMemberProcedure:     connect.NewUnaryHandler(LedgerServiceAddMemberProcedure, svc.AddMember, opts...),
		LedgerServiceRecordExpenseProcedure: connect.NewUnaryHandler(LedgerServiceRecordExpenseProcedure, svc.RecordExpense, opts...),
		LedgerServiceListExpensesProcedure:  connect.NewUnaryHandler(LedgerServiceListExpensesProcedure, svc.ListExpenses, opts...),
		LedgerServiceGroupBalancesProcedure: connect.NewUnaryHandler(LedgerServiceGroupBalancesProcedure, svc.GroupBalances, opts...),
		LedgerServiceSummaryProcedure:       connect.NewUnaryHandler(LedgerServiceSummaryProcedure, svc.Summary, opts...),

		LedgerServiceGetGroupProcedure:                connect.NewUnaryHandler(LedgerServiceGetGroupProcedure, svc.GetGroup, opts...),
		LedgerServiceListGroupsProcedure:              connect.NewUnaryHandler(LedgerServiceListGroupsProcedure, svc.ListGroups, opts...),
		LedgerServiceCreateSubscriptionProcedure:      connect.NewUnaryHandler(LedgerServiceCreateSubscriptionProcedure, svc.CreateSubscription, opts...),
		LedgerServiceListSubscriptionsProcedure:       connect.NewUnaryHandler(LedgerServiceListSubscriptionsProcedure, svc.ListSubscriptions, opts...),
		LedgerServiceProcessDueSubscriptionsProcedure: connect.NewUnaryHandler(LedgerServiceProcessDueSubscriptionsProcedure, svc.ProcessDueSubscriptions, opts...),
	}

	return "/" + LedgerServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		h.ServeHTTP(w, r)
	})
}

type LedgerServiceClient interface {
	CreateGroup(context.Context, *connect.Request[CreateGroupRequest]) (*connect.Response[CreateGroupResponse], error)
	AddMember(context.Context, *connect.Request[AddMemberRequest]) (*connect.Response[Empty], error)
	RecordExpense(context.Context, *connect.Request[RecordExpenseRequest]) (*connect.Response[RecordExpenseResponse], error)
	ListExpenses(context.Context, *connect.Request[ListExpensesRequest]) (*connect.Response[ListExpensesResponse], error)
	GroupBalances(context.Context, *connect.Request[GroupBalancesRequest]) (*connect.Response[GroupBalancesResponse], error)
	Summary(context.Context, *connect.Request[SummaryRequest]) (*connect.Response[SummaryResponse], error)
	GetGroup(context.Context, *connect.Request[GetGroupRequest]) (*connect.Response[GetGroupResponse], error)
	ListGroups(context.Context, *connect.Request[ListGroupsRequest]) (*connect.Response[ListGroupsResponse], error)
	CreateSubscription(context.Context, *connect.Request[CreateSubscriptionRequest]) (*connect.Response[CreateSubscriptionResponse], error)
	ListSubscriptions(context.Context, *connect.Request[ListSubscriptionsRequest]) (*connect.Response[ListSubscriptionsResponse], error)
	ProcessDueSubscriptions(context.Context, *connect.Request[ProcessDueSubscriptionsRequest]) (*connect.Response[ProcessDueSubscriptionsResponse], error)
}

func NewLedgerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) LedgerServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)

	return &ledgerServiceClient{
		createGroup:   connect.NewClient[CreateGroupRequest, CreateGroupResponse](httpClient, baseURL+LedgerServiceCreateGroupProcedure, opts...),
		addMember:     connect.NewClient[AddMemberRequest, Empty](httpClient, baseURL+LedgerServiceAddMemberProcedure, opts...),
		recordExpense: connect.NewClient[RecordExpenseRequest, RecordExpenseResponse](httpClient, baseURL+LedgerServiceRecordExpenseProcedure, opts...),
		listExpenses:  connect.NewClient[ListExpensesRequest, ListExpensesResponse](httpClient, baseURL+LedgerServiceListExpensesProcedure, opts...),
		groupBalances: connect.NewClient[GroupBalancesRequest, GroupBalancesResponse](httpClient, baseURL+LedgerServiceGroupBalancesProcedure, opts...),
		summary:       connect.NewClient[SummaryRequest, SummaryResponse](httpClient, baseURL+LedgerServiceSummaryProcedure, opts...),

		getGroup:                connect.NewClient[GetGroupRequest, GetGroupResponse](httpClient, baseURL+LedgerServiceGetGroupProcedure, opts...),
		listGroups:              connect.NewClient[ListGroupsRequest, ListGroupsResponse](httpClient, baseURL+LedgerServiceListGroupsProcedure, opts...),
		createSubscription:      connect.NewClient[CreateSubscriptionRequest, CreateSubscriptionResponse](httpClient, baseURL+LedgerServiceCreateSubscriptionProcedure, opts...),
		listSubscriptions:       connect.NewClient[ListSubscriptionsRequest, ListSubscriptionsResponse](httpClient, baseURL+LedgerServiceListSubscriptionsProcedure, opts...),
		processDueSubscriptions: connect.NewClient[ProcessDueSubscriptionsRequest, ProcessDueSubscriptionsResponse](httpClient, baseURL+LedgerServiceProcessDueSubscriptionsProcedure, opts...),
	}
}

type ledgerServiceClient struct {
	createGroup   *connect.Client[CreateGroupRequest, CreateGroupResponse]
	addMember     *connect.Client[AddMemberRequest, Empty]
	recordExpense *connect.Client[RecordExpenseRequest, RecordExpenseResponse]
	listExpenses  *connect.Client[ListExpensesRequest, ListExpensesResponse]
	groupBalances *connect.Client[GroupBalancesRequest, GroupBalancesResponse]
	summary       *connect.Client[SummaryRequest, SummaryResponse]

	getGroup                *connect.Client[GetGroupRequest, GetGroupResponse]
	listGroups              *connect.Client[ListGroupsRequest, ListGroupsResponse]
	createSubscription      *connect.Client[CreateSubscriptionRequest, CreateSubscriptionResponse]
	listSubscriptions       *connect.Client[ListSubscriptionsRequest, ListSubscriptionsResponse]
	processDueSubscriptions *connect.Client[ProcessDueSubscriptionsRequest, ProcessDueSubscriptionsResponse]
}

func (c *ledgerServiceClient) CreateGroup(ctx context.Context, req *connect.Request[CreateGroupRequest]) (*connect.Response[CreateGroupResponse], error) {
	return c.createGroup.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) AddMember(ctx context.Context, req *connect.Request[AddMemberRequest]) (*connect.Response[Empty], error) {
	return c.addMember.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) RecordExpense(ctx context.Context, req *connect.Request[RecordExpenseRequest]) (*connect.Response[RecordExpenseResponse], error) {
	return c.recordExpense.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ListExpenses(ctx context.Context, req *connect.Request[ListExpensesRequest]) (*connect.Response[ListExpensesResponse], error) {
	return c.listExpenses.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GroupBalances(ctx context.Context, req *connect.Request[GroupBalancesRequest]) (*connect.Response[GroupBalancesResponse], error) {
	return c.groupBalances.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) Summary(ctx context.Context, req *connect.Request[SummaryRequest]) (*connect.Response[SummaryResponse], error) {
	return c.summary.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetGroup(ctx context.Context, req *connect.Request[GetGroupRequest]) (*connect.Response[GetGroupResponse], error) {
	return c.getGroup.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ListGroups(ctx context.Context, req *connect.Request[ListGroupsRequest]) (*connect.Response[ListGroupsResponse], error) {
	return c.listGroups.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) CreateSubscription(ctx context.Context, req *connect.Request[CreateSubscriptionRequest]) (*connect.Response[CreateSubscriptionResponse], error) {
	return c.createSubscription.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ListSubscriptions(ctx context.Context, req *connect.Request[ListSubscriptionsRequest]) (*connect.Response[ListSubscriptionsResponse], error) {
	return c.listSubscriptions.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ProcessDueSubscriptions(ctx context.Context, req *connect.Request[ProcessDueSubscriptionsRequest]) (*connect.Response[ProcessDueSubscriptionsResponse], error) {
	return c.processDueSubscriptions.CallUnary(ctx, req)
}
