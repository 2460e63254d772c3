package ipc

import (
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"
)

// Client provides RPC access to the running instance.
type Client struct {
	conn   net.Conn
	client *rpc.Client
}

// Dial connects to the IPC server at the given socket path.
func Dial(path string) (*Client, error) {
	conn, err := net.DialTimeout("unix", path, 2*time.Second)
	if err != nil {
		return nil, err
	}
	rpcClient := rpc.NewClientWithCodec(jsonrpc.NewClientCodec(conn))
	return &Client{conn: conn, client: rpcClient}, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	if c.client != nil {
		_ = c.client.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// Ready performs the readiness handshake, draining any buffered URL.
func (c *Client) Ready() (*ReadyResponse, error) {
	var resp ReadyResponse
	if err := c.client.Call("PromptVault.Ready", ReadyRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Forward delivers second-launch arguments to the running instance.
func (c *Client) Forward(req ForwardRequest) (*ForwardResponse, error) {
	var resp ForwardResponse
	if err := c.client.Call("PromptVault.Forward", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// OpenURL delivers platform open-URL callback payloads.
func (c *Client) OpenURL(urls []string) error {
	var resp OpenURLResponse
	return c.client.Call("PromptVault.OpenURL", OpenURLRequest{URLs: urls}, &resp)
}

// Show asks the running instance to raise its window.
func (c *Client) Show() error {
	var resp ShowResponse
	return c.client.Call("PromptVault.Show", ShowRequest{}, &resp)
}

// Status retrieves running-instance status.
func (c *Client) Status() (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.client.Call("PromptVault.Status", StatusRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
