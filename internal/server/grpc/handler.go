package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/voxkeeper/internal/biometrics"
	"github.com/dmitrijs2005/voxkeeper/internal/common"
	pb "github.com/dmitrijs2005/voxkeeper/internal/proto"
	"github.com/dmitrijs2005/voxkeeper/internal/server/auth"
	"github.com/dmitrijs2005/voxkeeper/internal/server/models"
	"github.com/dmitrijs2005/voxkeeper/internal/server/verification"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}

func (s *GRPCServer) Enroll(ctx context.Context, req *pb.EnrollRequest) (*pb.EnrollResponse, error) {

	s.logger.Info(ctx, "Enrollment request", "username", req.Username)

	if err := s.svc.Enrollment.Enroll(ctx, req.Username, req.Password, req.Audio); err != nil {
		return nil, s.toStatus(ctx, pb.VoxKeeper_Enroll_FullMethodName, err)
	}

	return &pb.EnrollResponse{Status: "enrolled", Username: req.Username}, nil

}

func (s *GRPCServer) Reenroll(ctx context.Context, req *pb.ReenrollRequest) (*pb.ReenrollResponse, error) {

	if err := s.svc.Enrollment.Reenroll(ctx, req.Username, req.Password, req.Audio); err != nil {
		return nil, s.toStatus(ctx, pb.VoxKeeper_Reenroll_FullMethodName, err)
	}

	return &pb.ReenrollResponse{Status: "updated", Username: req.Username}, nil

}

// Verify answers with a response for every decision the orchestrator
// reached, accepted or not. Only accepted decisions carry a token; other
// failures become status errors.
func (s *GRPCServer) Verify(ctx context.Context, req *pb.VerifyRequest) (*pb.VerifyResponse, error) {

	d, err := s.svc.Verification.Verify(ctx, verification.Request{
		Username: req.Username,
		Secret:   req.Password,
		Audio:    req.Audio,
	})
	if err != nil {
		if d != nil && (errors.Is(err, common.ErrLowSimilarity) || errors.Is(err, common.ErrSpoofDetected)) {
			return s.verifyResponse(d), nil
		}
		return nil, s.toStatus(ctx, pb.VoxKeeper_Verify_FullMethodName, err)
	}

	token, err := auth.GenerateToken(d.Username, string(d.Method), s.jwtSecret, s.tokenTTL)
	if err != nil {
		s.logger.Error(ctx, "Token signing failed", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	resp := s.verifyResponse(d)
	resp.AccessToken = token
	return resp, nil

}

func (s *GRPCServer) verifyResponse(d *verification.Decision) *pb.VerifyResponse {
	return &pb.VerifyResponse{
		Username:  d.Username,
		Method:    string(d.Method),
		Result:    string(d.Outcome),
		Score:     d.Score,
		Threshold: s.svc.Verification.Threshold(),
		Liveness:  string(d.Liveness),
	}
}

func (s *GRPCServer) SpoofCheck(ctx context.Context, req *pb.SpoofCheckRequest) (*pb.SpoofCheckResponse, error) {

	v, err := s.svc.Verification.CheckLiveness(ctx, req.Audio)
	if err != nil {
		return nil, s.toStatus(ctx, pb.VoxKeeper_SpoofCheck_FullMethodName, err)
	}

	desc := "real speaker"
	if v != biometrics.Bonafide {
		desc = "synthetic or attack sample"
	}
	return &pb.SpoofCheckResponse{Result: string(v), Description: desc}, nil

}

func (s *GRPCServer) ListUsers(ctx context.Context, req *pb.ListUsersRequest) (*pb.ListUsersResponse, error) {

	names := s.svc.Users.ListUsernames(ctx)
	return &pb.ListUsersResponse{Count: int32(len(names)), Users: names}, nil

}

func (s *GRPCServer) CreateSession(ctx context.Context, req *pb.CreateSessionRequest) (*pb.CreateSessionResponse, error) {

	if err := authorize(ctx, req.Username); err != nil {
		return nil, err
	}

	id, err := s.svc.Sessions.CreateSession(ctx, req.Username, req.Name)
	if err != nil {
		return nil, s.toStatus(ctx, pb.VoxKeeper_CreateSession_FullMethodName, err)
	}

	return &pb.CreateSessionResponse{SessionId: id}, nil

}

func (s *GRPCServer) ListSessions(ctx context.Context, req *pb.ListSessionsRequest) (*pb.ListSessionsResponse, error) {

	if err := authorize(ctx, req.Username); err != nil {
		return nil, err
	}

	list, err := s.svc.Sessions.ListSessions(ctx, req.Username)
	if err != nil {
		return nil, s.toStatus(ctx, pb.VoxKeeper_ListSessions_FullMethodName, err)
	}

	out := make([]*pb.SessionInfo, 0, len(list))
	for _, sum := range list {
		out = append(out, &pb.SessionInfo{
			SessionId:    sum.ID,
			Name:         sum.Name,
			CreatedAt:    timestamppb.New(sum.CreatedAt),
			MessageCount: int32(sum.MessageCount),
		})
	}
	return &pb.ListSessionsResponse{Sessions: out}, nil

}

func (s *GRPCServer) GetSession(ctx context.Context, req *pb.GetSessionRequest) (*pb.GetSessionResponse, error) {

	if err := authorize(ctx, req.Username); err != nil {
		return nil, err
	}

	sess, err := s.svc.Sessions.GetSession(ctx, req.Username, req.SessionId)
	if err != nil {
		return nil, s.toStatus(ctx, pb.VoxKeeper_GetSession_FullMethodName, err)
	}

	return &pb.GetSessionResponse{
		SessionId: req.SessionId,
		Name:      sess.Name,
		CreatedAt: timestamppb.New(sess.CreatedAt),
		Messages:  toMessages(sess.Messages),
	}, nil

}

func (s *GRPCServer) ListMessages(ctx context.Context, req *pb.ListMessagesRequest) (*pb.ListMessagesResponse, error) {

	if err := authorize(ctx, req.Username); err != nil {
		return nil, err
	}

	msgs, err := s.svc.Sessions.ListMessages(ctx, req.Username, req.SessionId)
	if err != nil {
		return nil, s.toStatus(ctx, pb.VoxKeeper_ListMessages_FullMethodName, err)
	}

	return &pb.ListMessagesResponse{Messages: toMessages(msgs)}, nil

}

func (s *GRPCServer) SendMessage(ctx context.Context, req *pb.SendMessageRequest) (*pb.SendMessageResponse, error) {

	if err := authorize(ctx, req.Username); err != nil {
		return nil, err
	}

	reply, err := s.svc.Sessions.Send(ctx, req.Username, req.SessionId, req.Message)
	if err != nil {
		return nil, s.toStatus(ctx, pb.VoxKeeper_SendMessage_FullMethodName, err)
	}

	return &pb.SendMessageResponse{Reply: reply}, nil

}

func (s *GRPCServer) DeleteSession(ctx context.Context, req *pb.DeleteSessionRequest) (*pb.DeleteSessionResponse, error) {

	if err := authorize(ctx, req.Username); err != nil {
		return nil, err
	}

	if err := s.svc.Sessions.DeleteSession(ctx, req.Username, req.SessionId); err != nil {
		return nil, s.toStatus(ctx, pb.VoxKeeper_DeleteSession_FullMethodName, err)
	}

	return &pb.DeleteSessionResponse{Status: "deleted"}, nil

}

func toMessages(msgs []models.ChatMessage) []*pb.Message {
	out := make([]*pb.Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, &pb.Message{Timestamp: timestamppb.New(m.Timestamp), Role: string(m.Role), Message: m.Message})
	}
	return out
}
