// Package http provides request and response helpers for chi handlers.
//
// # Request
//
//	req := gohttp.NewRequest(r)
//
//	price := req.Query("windows_price", "6666")
//	input := req.Queries("windows_price", "linux_price")  // map[string]string
//	id    := req.RouteParam("id")
//	req.WantsJSON()   // Accept: application/json OR ?format=json
//
// # Response
//
//	res := gohttp.NewResponse(w)
//
//	res.JSON(200, data)           // raw JSON with status
//	res.Success(data)             // 200 {"data": ...}
//	res.Text(200, "Computer OS: Windows\n")
//
//	res.Error(400, "bad input")   // {"message": "bad input"}
//	res.NotFound()                // 404 {"message": "Not found."}
//	res.ServerError()             // 500 {"message": "Server Error."}
//	res.ValidationError(errs)     // 422 {"errors": {"field": ["msg"]}}
package http
