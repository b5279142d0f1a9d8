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

	"github.com/labstack/echo/v4"
)

// Register adds the ledger endpoints to the given server and makes it answer
// unknown routes with an empty 404.
func Register(server *echo.Echo, ctrl *Controller) {
	server.HTTPErrorHandler = handleError
	server.GET("/", ctrl.Hello)
	server.GET("/blocks", ctrl.Blocks)
	server.POST("/mintBlock", ctrl.MintBlock)
	server.GET("/peers", ctrl.Peers)
	server.POST("/addPeer", ctrl.AddPeer)
	server.POST("/replaceChain", ctrl.ReplaceChain)
}

// handleError treats a known route requested with the wrong method the same
// as an unknown route.
func handleError(err error, ctx echo.Context) {

	if ctx.Response().Committed {
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && (httpErr.Code == http.StatusNotFound || httpErr.Code == http.StatusMethodNotAllowed) {
		err = ctx.NoContent(http.StatusNotFound)
		if err != nil {
			ctx.Logger().Error(err)
		}
		return
	}

	ctx.Echo().DefaultHTTPErrorHandler(err, ctx)
}
