package http

import (
	"context"
	"errors"
)

type RequestMethod string

const (
	GET  RequestMethod = "GET"
	POST RequestMethod = "POST"
)

var errNoClient = errors.New("http request has no client")

// call is everything doRequest needs for one round trip
type call struct {
	method      RequestMethod
	path        string
	query       map[string]string
	headers     map[string]string
	body        any
	successResp any
	errorResp   any
}

// Request builds a single call made through a Client. GET on the base URL unless told otherwise.
type Request struct {
	client *Client
	ctx    context.Context
	call   call
}

func (r *Request) WithContext(ctx context.Context) *Request {
	if ctx != nil {
		r.ctx = ctx
	}
	return r
}

func (r *Request) WithMethod(method RequestMethod) *Request {
	r.call.method = method
	return r
}

// WithPath is appended to the base URL
func (r *Request) WithPath(path string) *Request {
	r.call.path = path
	return r
}

// WithQueryParams values are URL encoded when the call is made
func (r *Request) WithQueryParams(params map[string]string) *Request {
	r.call.query = params
	return r
}

func (r *Request) WithHeaders(headers map[string]string) *Request {
	r.call.headers = headers
	return r
}

func (r *Request) WithBody(body any) *Request {
	r.call.body = body
	return r
}

// WithSuccessResp is decoded from a 2xx body
func (r *Request) WithSuccessResp(successResp any) *Request {
	r.call.successResp = successResp
	return r
}

// WithErrorResp is decoded from a non-2xx body when possible
func (r *Request) WithErrorResp(errorResp any) *Request {
	r.call.errorResp = errorResp
	return r
}

// Execute returns the decoded success target, the decoded error target and the status code.
// Non-2xx statuses yield a *StatusError and undecodable 2xx bodies a *DecodeError.
func (r *Request) Execute() (any, any, int, error) {
	if r.client == nil {
		return nil, nil, 0, errNoClient
	}
	if r.call.method == "" {
		r.call.method = GET
	}
	return r.client.doRequest(r.ctx, r.call)
}
