package grpcapi

import (
	"context"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/f-coded/omotanwa-aesthetics-glow/catalog"
	"github.com/f-coded/omotanwa-aesthetics-glow/checkout"
	"github.com/f-coded/omotanwa-aesthetics-glow/common"
	"github.com/f-coded/omotanwa-aesthetics-glow/storefront"
)

// formatEndpoint converts an endpoint to gRPC target format.
// Paths with a leading '/' or './' are Unix domain sockets.
func formatEndpoint(endpoint string) string {
	if strings.HasPrefix(endpoint, "/") || strings.HasPrefix(endpoint, "./") {
		return "unix://" + endpoint
	}
	return endpoint
}

// Client calls the storefront service.
type Client struct {
	cc   grpc.ClientConnInterface
	conn *grpc.ClientConn
}

// NewClient connects to a storefront service at the given endpoint.
func NewClient(endpoint string, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, opts...)
	conn, err := grpc.NewClient(formatEndpoint(endpoint), opts...)
	if err != nil {
		return nil, TransportError(err)
	}
	return &Client{cc: conn, conn: conn}, nil
}

// ClientFromEnv connects using an environment variable with fallback.
func ClientFromEnv(envVar, defaultEndpoint string) (*Client, error) {
	endpoint := os.Getenv(envVar)
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	return NewClient(endpoint)
}

// ClientFromConn creates a client from an existing connection.
func ClientFromConn(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Close closes the connection if the client owns it.
func (c *Client) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

func (c *Client) invoke(ctx context.Context, method string, req, resp interface{}) error {
	if err := c.cc.Invoke(ctx, FullMethod(method), req, resp, grpc.CallContentSubtype(common.JSONCodecName)); err != nil {
		return GRPCError(err)
	}
	return nil
}

// call invokes method and decodes the reply into a new Resp.
func call[Resp any](ctx context.Context, c *Client, method string, req interface{}) (*Resp, error) {
	resp := new(Resp)
	if err := c.invoke(ctx, method, req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) OpenSession(ctx context.Context) (*storefront.SessionView, error) {
	return call[storefront.SessionView](ctx, c, MethodOpenSession, &Empty{})
}

func (c *Client) CloseSession(ctx context.Context, sessionID string) error {
	return c.invoke(ctx, MethodCloseSession, &SessionRequest{SessionID: sessionID}, &Empty{})
}

func (c *Client) ListProducts(ctx context.Context, req *ListProductsRequest) ([]storefront.ProductView, error) {
	resp := new(ListProductsResponse)
	if err := c.invoke(ctx, MethodListProducts, req, resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

// ListFeatured returns the featured products. sessionID may be empty.
func (c *Client) ListFeatured(ctx context.Context, sessionID string) ([]storefront.ProductView, error) {
	return c.listProducts(ctx, MethodListFeatured, sessionID)
}

// ListNewArrivals returns the new arrivals. sessionID may be empty.
func (c *Client) ListNewArrivals(ctx context.Context, sessionID string) ([]storefront.ProductView, error) {
	return c.listProducts(ctx, MethodListNewArrivals, sessionID)
}

func (c *Client) listProducts(ctx context.Context, method, sessionID string) ([]storefront.ProductView, error) {
	resp := new(ListProductsResponse)
	if err := c.invoke(ctx, method, &SessionRequest{SessionID: sessionID}, resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

func (c *Client) GetProduct(ctx context.Context, sessionID, productID string) (*storefront.ProductView, error) {
	return call[storefront.ProductView](ctx, c, MethodGetProduct, &GetProductRequest{SessionID: sessionID, ProductID: productID})
}

func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	resp := new(ListCategoriesResponse)
	if err := c.invoke(ctx, MethodListCategories, &Empty{}, resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

func (c *Client) AddProduct(ctx context.Context, np catalog.NewProduct) (*storefront.ProductView, error) {
	return call[storefront.ProductView](ctx, c, MethodAddProduct, &AddProductRequest{Product: np})
}

func (c *Client) GetCart(ctx context.Context, sessionID string) (*storefront.CartView, error) {
	return call[storefront.CartView](ctx, c, MethodGetCart, &SessionRequest{SessionID: sessionID})
}

func (c *Client) AddItem(ctx context.Context, sessionID, productID string, quantity int) (*storefront.CartView, error) {
	req := &ItemRequest{SessionID: sessionID, ProductID: productID, Quantity: quantity}
	return call[storefront.CartView](ctx, c, MethodAddItem, req)
}

func (c *Client) RemoveItem(ctx context.Context, sessionID, productID string) (*storefront.CartView, error) {
	req := &ItemRequest{SessionID: sessionID, ProductID: productID}
	return call[storefront.CartView](ctx, c, MethodRemoveItem, req)
}

func (c *Client) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (*storefront.CartView, error) {
	req := &ItemRequest{SessionID: sessionID, ProductID: productID, Quantity: quantity}
	return call[storefront.CartView](ctx, c, MethodUpdateQuantity, req)
}

func (c *Client) ClearCart(ctx context.Context, sessionID string) (*storefront.CartView, error) {
	return call[storefront.CartView](ctx, c, MethodClearCart, &SessionRequest{SessionID: sessionID})
}

func (c *Client) GetRegion(ctx context.Context, sessionID string) (*storefront.RegionView, error) {
	return call[storefront.RegionView](ctx, c, MethodGetRegion, &SessionRequest{SessionID: sessionID})
}

func (c *Client) SetRegion(ctx context.Context, sessionID, region string) (*storefront.RegionView, error) {
	return call[storefront.RegionView](ctx, c, MethodSetRegion, &SetRegionRequest{SessionID: sessionID, Region: region})
}

func (c *Client) FormatPrice(ctx context.Context, sessionID string, amount decimal.Decimal) (*storefront.PriceView, error) {
	return call[storefront.PriceView](ctx, c, MethodFormatPrice, &FormatPriceRequest{SessionID: sessionID, Amount: amount})
}

func (c *Client) GetQuote(ctx context.Context, sessionID string) (*storefront.QuoteView, error) {
	return call[storefront.QuoteView](ctx, c, MethodGetQuote, &SessionRequest{SessionID: sessionID})
}

func (c *Client) PlaceOrder(ctx context.Context, sessionID string, form checkout.Form) (*storefront.OrderView, error) {
	return call[storefront.OrderView](ctx, c, MethodPlaceOrder, &PlaceOrderRequest{SessionID: sessionID, Form: form})
}

func (c *Client) ListOrders(ctx context.Context, sessionID string) ([]storefront.OrderView, error) {
	resp := new(ListOrdersResponse)
	if err := c.invoke(ctx, MethodListOrders, &SessionRequest{SessionID: sessionID}, resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}
