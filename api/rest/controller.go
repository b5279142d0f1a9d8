// Copyright 2021 Alvalor S.A.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package rest

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/optakt/neon-ledger/models/ledger"
)

const (
	greeting    = "Hello"
	invalidBody = "Invalid body"
)

// Controller implements the HTTP endpoints of a ledger node on top of a
// coordinator.
type Controller struct {
	node     ledger.Coordinator
	validate *validator.Validate
}

// NewController creates a controller that serves requests from the given
// coordinator.
func NewController(node ledger.Coordinator) *Controller {
	c := Controller{
		node:     node,
		validate: validator.New(),
	}
	return &c
}

// Hello answers with a plain text greeting.
func (c *Controller) Hello(ctx echo.Context) error {
	return ctx.String(http.StatusOK, greeting)
}

// Blocks returns the whole chain in order.
func (c *Controller) Blocks(ctx echo.Context) error {
	res := BlocksResponse{
		Blocks: c.node.Blocks(),
	}
	return ctx.JSON(http.StatusOK, res)
}

// MintBlock appends a block with the requested payload and returns it.
func (c *Controller) MintBlock(ctx echo.Context) error {

	var req MintBlockRequest
	err := c.bind(ctx, &req)
	if err != nil {
		return ctx.String(http.StatusBadRequest, invalidBody)
	}

	block := c.node.Mint(*req.Data)

	res := MintBlockResponse{
		Block: block,
	}

	return ctx.JSON(http.StatusOK, res)
}

// Peers returns the registered peer addresses.
func (c *Controller) Peers(ctx echo.Context) error {
	res := PeersResponse{
		Peers: c.node.Peers(),
	}
	return ctx.JSON(http.StatusOK, res)
}

// AddPeer registers a peer address and answers with an empty body.
func (c *Controller) AddPeer(ctx echo.Context) error {

	var req AddPeerRequest
	err := c.bind(ctx, &req)
	if err != nil {
		return ctx.String(http.StatusBadRequest, invalidBody)
	}

	c.node.AddPeer(*req.Peer)

	return ctx.NoContent(http.StatusOK)
}

// ReplaceChain offers a candidate chain to the node. The response does not
// tell why a candidate was rejected.
func (c *Controller) ReplaceChain(ctx echo.Context) error {

	var req ReplaceChainRequest
	err := c.bind(ctx, &req)
	if err != nil {
		return ctx.String(http.StatusBadRequest, invalidBody)
	}

	err = c.node.Replace(req.Blocks)
	if errors.Is(err, ledger.ErrChainRejected) {
		return ctx.NoContent(http.StatusConflict)
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return ctx.NoContent(http.StatusOK)
}

func (c *Controller) bind(ctx echo.Context, req interface{}) error {
	err := ctx.Bind(req)
	if err != nil {
		return err
	}
	return c.validate.Struct(req)
}
