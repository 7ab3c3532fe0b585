package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "sheet.v1alpha1.SheetService"

// Method names
const (
	MethodCreateSheet             = "CreateSheet"
	MethodGetSheet                = "GetSheet"
	MethodDeleteSheet             = "DeleteSheet"
	MethodIncrementAttribute      = "IncrementAttribute"
	MethodDecrementAttribute      = "DecrementAttribute"
	MethodListClasses             = "ListClasses"
	MethodGetClassRequirements    = "GetClassRequirements"
	MethodCheckEligibility        = "CheckEligibility"
	MethodSelectClass             = "SelectClass"
	MethodClearSelectedClass      = "ClearSelectedClass"
	MethodGetAvailableSkillPoints = "GetAvailableSkillPoints"
	MethodIncrementSkill          = "IncrementSkill"
	MethodDecrementSkill          = "DecrementSkill"
	MethodGetSkillTotal           = "GetSkillTotal"
)

// FullMethod returns the /service/method path for method
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// SheetServiceServer is the server API for the sheet service. Requests and
// responses are google.protobuf.Struct messages.
type SheetServiceServer interface {
	CreateSheet(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetSheet(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	DeleteSheet(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	IncrementAttribute(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	DecrementAttribute(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ListClasses(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetClassRequirements(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	CheckEligibility(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	SelectClass(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ClearSelectedClass(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetAvailableSkillPoints(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	IncrementSkill(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	DecrementSkill(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetSkillTotal(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

type serverCall func(srv SheetServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(method string, call serverCall) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(SheetServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: FullMethod(method),
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(SheetServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// SheetServiceDesc describes the sheet service for grpc.Server.RegisterService
var SheetServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SheetServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: MethodCreateSheet, Handler: unaryHandler(MethodCreateSheet, SheetServiceServer.CreateSheet)},
		{MethodName: MethodGetSheet, Handler: unaryHandler(MethodGetSheet, SheetServiceServer.GetSheet)},
		{MethodName: MethodDeleteSheet, Handler: unaryHandler(MethodDeleteSheet, SheetServiceServer.DeleteSheet)},
		{MethodName: MethodIncrementAttribute, Handler: unaryHandler(MethodIncrementAttribute, SheetServiceServer.IncrementAttribute)},
		{MethodName: MethodDecrementAttribute, Handler: unaryHandler(MethodDecrementAttribute, SheetServiceServer.DecrementAttribute)},
		{MethodName: MethodListClasses, Handler: unaryHandler(MethodListClasses, SheetServiceServer.ListClasses)},
		{MethodName: MethodGetClassRequirements, Handler: unaryHandler(MethodGetClassRequirements, SheetServiceServer.GetClassRequirements)},
		{MethodName: MethodCheckEligibility, Handler: unaryHandler(MethodCheckEligibility, SheetServiceServer.CheckEligibility)},
		{MethodName: MethodSelectClass, Handler: unaryHandler(MethodSelectClass, SheetServiceServer.SelectClass)},
		{MethodName: MethodClearSelectedClass, Handler: unaryHandler(MethodClearSelectedClass, SheetServiceServer.ClearSelectedClass)},
		{MethodName: MethodGetAvailableSkillPoints, Handler: unaryHandler(MethodGetAvailableSkillPoints, SheetServiceServer.GetAvailableSkillPoints)},
		{MethodName: MethodIncrementSkill, Handler: unaryHandler(MethodIncrementSkill, SheetServiceServer.IncrementSkill)},
		{MethodName: MethodDecrementSkill, Handler: unaryHandler(MethodDecrementSkill, SheetServiceServer.DecrementSkill)},
		{MethodName: MethodGetSkillTotal, Handler: unaryHandler(MethodGetSkillTotal, SheetServiceServer.GetSkillTotal)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "sheet/v1alpha1/sheet.proto",
}

// RegisterSheetServiceServer registers srv on s
func RegisterSheetServiceServer(s grpc.ServiceRegistrar, srv SheetServiceServer) {
	s.RegisterService(&SheetServiceDesc, srv)
}

// SheetServiceClient calls the sheet service over a client connection
type SheetServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewSheetServiceClient creates a client on cc
func NewSheetServiceClient(cc grpc.ClientConnInterface) *SheetServiceClient {
	return &SheetServiceClient{cc: cc}
}

// Call invokes method with req
func (c *SheetServiceClient) Call(
	ctx context.Context,
	method string,
	req *structpb.Struct,
	opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	if req == nil {
		req = &structpb.Struct{}
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethod(method), req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
