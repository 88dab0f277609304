package grpcapi

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc"

	"github.com/f-coded/omotanwa-aesthetics-glow/catalog"
	"github.com/f-coded/omotanwa-aesthetics-glow/common"
	"github.com/f-coded/omotanwa-aesthetics-glow/storefront"
)

// Server implements StorefrontServer over a storefront.App.
type Server struct {
	app *storefront.App
}

// NewServer creates a Server.
func NewServer(app *storefront.App) *Server {
	return &Server{app: app}
}

// Register returns a common.RegisterFunc that installs the service.
func (s *Server) Register() common.RegisterFunc {
	return func(gs *grpc.Server) {
		RegisterStorefrontServer(gs, s)
	}
}

func (s *Server) OpenSession(ctx context.Context, _ *Empty) (*storefront.SessionView, error) {
	view := s.app.OpenSession()
	return &view, nil
}

func (s *Server) CloseSession(ctx context.Context, req *SessionRequest) (*Empty, error) {
	id, err := storefront.ParseSessionID(req.SessionID)
	if err != nil {
		return nil, common.MapCommandError(err)
	}
	if err := s.app.CloseSession(id); err != nil {
		return nil, common.MapCommandError(err)
	}
	return &Empty{}, nil
}

func (s *Server) ListProducts(ctx context.Context, req *ListProductsRequest) (*ListProductsResponse, error) {
	id, err := optionalSessionID(req.SessionID)
	if err != nil {
		return nil, common.MapCommandError(err)
	}
	products, err := s.app.Products(id, catalog.Query{
		Search:   req.Search,
		Category: req.Category,
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
		Sort:     catalog.SortOrder(req.Sort),
	})
	if err != nil {
		return nil, common.MapCommandError(err)
	}
	return &ListProductsResponse{Products: products}, nil
}

func (s *Server) ListFeatured(ctx context.Context, req *SessionRequest) (*ListProductsResponse, error) {
	return s.listWith(req.SessionID, s.app.Featured)
}

func (s *Server) ListNewArrivals(ctx context.Context, req *SessionRequest) (*ListProductsResponse, error) {
	return s.listWith(req.SessionID, s.app.NewArrivals)
}

func (s *Server) listWith(sessionID string, list func(uuid.UUID) ([]storefront.ProductView, error)) (*ListProductsResponse, error) {
	id, err := optionalSessionID(sessionID)
	if err != nil {
		return nil, common.MapCommandError(err)
	}
	products, err := list(id)
	if err != nil {
		return nil, common.MapCommandError(err)
	}
	return &ListProductsResponse{Products: products}, nil
}

func (s *Server) GetProduct(ctx context.Context, req *GetProductRequest) (*storefront.ProductView, error) {
	id, err := optionalSessionID(req.SessionID)
	if err != nil {
		return nil, common.MapCommandError(err)
	}
	view, err := s.app.Product(id, req.ProductID)
	if err != nil {
		return nil, common.MapCommandError(err)
	}
	return &view, nil
}

func (s *Server) ListCategories(ctx context.Context, _ *Empty) (*ListCategoriesResponse, error) {
	return &ListCategoriesResponse{Categories: s.app.Categories()}, nil
}

func (s *Server) AddProduct(ctx context.Context, req *AddProductRequest) (*storefront.ProductView, error) {
	view, err := s.app.AddProduct(req.Product)
	if err != nil {
		return nil, common.MapCommandError(err)
	}
	return &view, nil
}

func (s *Server) GetCart(ctx context.Context, req *SessionRequest) (*storefront.CartView, error) {
	return s.cartCall(req.SessionID, s.app.Cart)
}

func (s *Server) AddItem(ctx context.Context, req *ItemRequest) (*storefront.CartView, error) {
	return s.cartCall(req.SessionID, func(id uuid.UUID) (storefront.CartView, error) {
		return s.app.AddItem(id, req.ProductID, req.Quantity)
	})
}

func (s *Server) RemoveItem(ctx context.Context, req *ItemRequest) (*storefront.CartView, error) {
	return s.cartCall(req.SessionID, func(id uuid.UUID) (storefront.CartView, error) {
		return s.app.RemoveItem(id, req.ProductID)
	})
}

func (s *Server) UpdateQuantity(ctx context.Context, req *ItemRequest) (*storefront.CartView, error) {
	return s.cartCall(req.SessionID, func(id uuid.UUID) (storefront.CartView, error) {
		return s.app.UpdateQuantity(id, req.ProductID, req.Quantity)
	})
}

func (s *Server) ClearCart(ctx context.Context, req *SessionRequest) (*storefront.CartView, error) {
	return s.cartCall(req.SessionID, s.app.ClearCart)
}

func (s *Server) GetRegion(ctx context.Context, req *SessionRequest) (*storefront.RegionView, error) {
	id, err := storefront.ParseSessionID(req.SessionID)
	if err != nil {
		return nil, common.MapCommandError(err)
	}
	view, err := s.app.Region(id)
	if err != nil {
		return nil, common.MapCommandError(err)
	}
	return &view, nil
}

func (s *Server) SetRegion(ctx context.Context, req *SetRegionRequest) (*storefront.RegionView, error) {
	id, err := storefront.ParseSessionID(req.SessionID)
	if err != nil {
		return nil, common.MapCommandError(err)
	}
	view, err := s.app.SetRegion(id, req.Region)
	if err != nil {
		return nil, common.MapCommandError(err)
	}
	return &view, nil
}

func (s *Server) FormatPrice(ctx context.Context, req *FormatPriceRequest) (*storefront.PriceView, error) {
	id, err := storefront.ParseSessionID(req.SessionID)
	if err != nil {
		return nil, common.MapCommandError(err)
	}
	view, err := s.app.FormatPrice(id, req.Amount)
	if err != nil {
		return nil, common.MapCommandError(err)
	}
	return &view, nil
}

func (s *Server) GetQuote(ctx context.Context, req *SessionRequest) (*storefront.QuoteView, error) {
	id, err := storefront.ParseSessionID(req.SessionID)
	if err != nil {
		return nil, common.MapCommandError(err)
	}
	view, err := s.app.Quote(id)
	if err != nil {
		return nil, common.MapCommandError(err)
	}
	return &view, nil
}

func (s *Server) PlaceOrder(ctx context.Context, req *PlaceOrderRequest) (*storefront.OrderView, error) {
	id, err := storefront.ParseSessionID(req.SessionID)
	if err != nil {
		return nil, common.MapCommandError(err)
	}
	view, err := s.app.PlaceOrder(ctx, id, req.Form)
	if err != nil {
		return nil, common.MapCommandError(err)
	}
	return &view, nil
}

func (s *Server) ListOrders(ctx context.Context, req *SessionRequest) (*ListOrdersResponse, error) {
	id, err := storefront.ParseSessionID(req.SessionID)
	if err != nil {
		return nil, common.MapCommandError(err)
	}
	orders, err := s.app.Orders(id)
	if err != nil {
		return nil, common.MapCommandError(err)
	}
	return &ListOrdersResponse{Orders: orders}, nil
}

func (s *Server) cartCall(sessionID string, call func(uuid.UUID) (storefront.CartView, error)) (*storefront.CartView, error) {
	id, err := storefront.ParseSessionID(sessionID)
	if err != nil {
		return nil, common.MapCommandError(err)
	}
	view, err := call(id)
	if err != nil {
		return nil, common.MapCommandError(err)
	}
	return &view, nil
}

// optionalSessionID treats an empty ID as "no session".
func optionalSessionID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, nil
	}
	return storefront.ParseSessionID(s)
}
