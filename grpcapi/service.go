// Package grpcapi exposes the storefront over gRPC. Messages are plain Go
// structs encoded with the JSON codec registered by package common.
package grpcapi

import (
	"context"

	"google.golang.org/grpc"

	"github.com/f-coded/omotanwa-aesthetics-glow/storefront"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "storefront.v1.Storefront"

// Method names.
const (
	MethodOpenSession     = "OpenSession"
	MethodCloseSession    = "CloseSession"
	MethodListProducts    = "ListProducts"
	MethodListFeatured    = "ListFeatured"
	MethodListNewArrivals = "ListNewArrivals"
	MethodGetProduct      = "GetProduct"
	MethodListCategories  = "ListCategories"
	MethodAddProduct      = "AddProduct"
	MethodGetCart         = "GetCart"
	MethodAddItem         = "AddItem"
	MethodRemoveItem      = "RemoveItem"
	MethodUpdateQuantity  = "UpdateQuantity"
	MethodClearCart       = "ClearCart"
	MethodGetRegion       = "GetRegion"
	MethodSetRegion       = "SetRegion"
	MethodFormatPrice     = "FormatPrice"
	MethodGetQuote        = "GetQuote"
	MethodPlaceOrder      = "PlaceOrder"
	MethodListOrders      = "ListOrders"
)

// FullMethod returns the "/service/method" path of a method.
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// StorefrontServer is the server API of the storefront service.
type StorefrontServer interface {
	OpenSession(context.Context, *Empty) (*storefront.SessionView, error)
	CloseSession(context.Context, *SessionRequest) (*Empty, error)
	ListProducts(context.Context, *ListProductsRequest) (*ListProductsResponse, error)
	ListFeatured(context.Context, *SessionRequest) (*ListProductsResponse, error)
	ListNewArrivals(context.Context, *SessionRequest) (*ListProductsResponse, error)
	GetProduct(context.Context, *GetProductRequest) (*storefront.ProductView, error)
	ListCategories(context.Context, *Empty) (*ListCategoriesResponse, error)
	AddProduct(context.Context, *AddProductRequest) (*storefront.ProductView, error)
	GetCart(context.Context, *SessionRequest) (*storefront.CartView, error)
	AddItem(context.Context, *ItemRequest) (*storefront.CartView, error)
	RemoveItem(context.Context, *ItemRequest) (*storefront.CartView, error)
	UpdateQuantity(context.Context, *ItemRequest) (*storefront.CartView, error)
	ClearCart(context.Context, *SessionRequest) (*storefront.CartView, error)
	GetRegion(context.Context, *SessionRequest) (*storefront.RegionView, error)
	SetRegion(context.Context, *SetRegionRequest) (*storefront.RegionView, error)
	FormatPrice(context.Context, *FormatPriceRequest) (*storefront.PriceView, error)
	GetQuote(context.Context, *SessionRequest) (*storefront.QuoteView, error)
	PlaceOrder(context.Context, *PlaceOrderRequest) (*storefront.OrderView, error)
	ListOrders(context.Context, *SessionRequest) (*ListOrdersResponse, error)
}

// unary builds a MethodDesc that decodes Req, runs interceptors and calls
// the typed server method.
func unary[Req, Resp any](name string, call func(StorefrontServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(StorefrontServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(name)}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(StorefrontServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// ServiceDesc describes the storefront service for grpc.Server.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*StorefrontServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(MethodOpenSession, StorefrontServer.OpenSession),
		unary(MethodCloseSession, StorefrontServer.CloseSession),
		unary(MethodListProducts, StorefrontServer.ListProducts),
		unary(MethodListFeatured, StorefrontServer.ListFeatured),
		unary(MethodListNewArrivals, StorefrontServer.ListNewArrivals),
		unary(MethodGetProduct, StorefrontServer.GetProduct),
		unary(MethodListCategories, StorefrontServer.ListCategories),
		unary(MethodAddProduct, StorefrontServer.AddProduct),
		unary(MethodGetCart, StorefrontServer.GetCart),
		unary(MethodAddItem, StorefrontServer.AddItem),
		unary(MethodRemoveItem, StorefrontServer.RemoveItem),
		unary(MethodUpdateQuantity, StorefrontServer.UpdateQuantity),
		unary(MethodClearCart, StorefrontServer.ClearCart),
		unary(MethodGetRegion, StorefrontServer.GetRegion),
		unary(MethodSetRegion, StorefrontServer.SetRegion),
		unary(MethodFormatPrice, StorefrontServer.FormatPrice),
		unary(MethodGetQuote, StorefrontServer.GetQuote),
		unary(MethodPlaceOrder, StorefrontServer.PlaceOrder),
		unary(MethodListOrders, StorefrontServer.ListOrders),
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterStorefrontServer registers srv on s.
func RegisterStorefrontServer(s grpc.ServiceRegistrar, srv StorefrontServer) {
	s.RegisterService(&ServiceDesc, srv)
}
