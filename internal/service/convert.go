package service

import (
	"github.com/samber/lo"

	"github.com/mmynk/billsplit/internal/calculator"
	"github.com/mmynk/billsplit/internal/models"
	pb "github.com/mmynk/billsplit/pkg/proto"
)

func toProtoParticipants(ps []models.Participant) []*pb.Participant {
	return lo.Map(ps, func(p models.Participant, _ int) *pb.Participant {
		return &pb.Participant{
			Id:    int32(p.ID),
			Name:  p.Name,
			Value: p.Value,
			Fixed: p.Fixed,
		}
	})
}

func toSessionState(sessionID string, d models.Draft) *pb.SessionState {
	return &pb.SessionState{
		SessionId:    sessionID,
		AccountName:  d.AccountName,
		TotalValue:   d.TotalValue,
		NumPeople:    int32(d.NumPeople),
		Participants: toProtoParticipants(d.Participants),
		Sum:          calculator.Sum(d.Participants),
	}
}

func toProtoBill(b *models.Bill) *pb.Bill {
	return &pb.Bill{
		BillId:       b.ID,
		Name:         b.Name,
		TotalValue:   b.TotalValue,
		Participants: toProtoParticipants(b.Participants),
		CreatedAt:    b.CreatedAt,
	}
}
