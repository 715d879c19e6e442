package transform

import (
	ledgerv1 "github.com/iskorotkov/splitledger-backend/internal/api/ledger/v1"
	"github.com/iskorotkov/splitledger-backend/internal/db"
	"github.com/iskorotkov/splitledger-backend/internal/domain"
)

func SettlementsToAPI(settlements []domain.Settlement) ([]*ledgerv1.Settlement, error) {
	out := make([]*ledgerv1.Settlement, 0, len(settlements))
	for _, s := range settlements {
		out = append(out, &ledgerv1.Settlement{
			From:   string(s.From),
			To:     string(s.To),
			Amount: AmountToAPI(s.Amount),
		})
	}
	return out, nil
}

func SummaryToAPI(s domain.Summary) (*ledgerv1.SummaryResponse, error) {
	return &ledgerv1.SummaryResponse{
		YouOwe:       AmountToAPI(s.YouOwe),
		YouAreOwed:   AmountToAPI(s.YouAreOwed),
		TotalBalance: AmountToAPI(s.TotalBalance),
	}, nil
}

func GroupFromPgx(g db.Group, members []domain.ParticipantID) (domain.Group, error) {
	return domain.Group{
		CreatedAt: g.CreatedAt,
		GroupID:   g.GroupID,
		Name:      g.Name,
		Members:   members,
	}, nil
}

func GroupToAPI(g domain.Group) *ledgerv1.Group {
	members := make([]string, 0, len(g.Members))
	for _, m := range g.Members {
		members = append(members, string(m))
	}

	return &ledgerv1.Group{
		GroupId:   g.GroupID.String(),
		Name:      g.Name,
		MemberIds: members,
		CreatedAt: formatTime(g.CreatedAt),
	}
}
