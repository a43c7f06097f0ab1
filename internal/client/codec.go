package client

import (
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"

	"github.com/saladworks/cartctl/internal/domain/cart"
	"github.com/saladworks/cartctl/internal/domain/order"
	"github.com/saladworks/cartctl/internal/domain/product"
)

// --- Decode helpers ---

func decodeDecimal(d *jx.Decoder) (decimal.Decimal, error) {
	n, err := d.Num()
	if err != nil {
		return decimal.Decimal{}, err
	}
	return decimal.NewFromString(strings.Trim(string(n), `"`))
}

// timeLayouts covers RFC 3339 and the timezone-naive ISO form the backend
// emits for SQLite-backed timestamps.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

func decodeTime(d *jx.Decoder) (time.Time, error) {
	if d.Next() == jx.Null {
		return time.Time{}, d.Null()
	}
	s, err := d.Str()
	if err != nil {
		return time.Time{}, err
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Errorf("unrecognized timestamp %q", s)
}

func decodeOptStr(d *jx.Decoder) (string, error) {
	if d.Next() == jx.Null {
		return "", d.Null()
	}
	return d.Str()
}

// --- Cart ---

func decodeLineItem(d *jx.Decoder) (cart.LineItem, error) {
	var item cart.LineItem
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "id":
			item.ID, err = d.Int64()
		case "user_session":
			item.UserSession, err = d.Str()
		case "product_name":
			item.ProductName, err = d.Str()
		case "quantity":
			item.Quantity, err = d.Int()
		case "unit_price":
			item.UnitPrice, err = decodeDecimal(d)
		case "total_price":
			item.TotalPrice, err = decodeDecimal(d)
		case "created_at":
			item.CreatedAt, err = decodeTime(d)
		case "updated_at":
			item.UpdatedAt, err = decodeTime(d)
		default:
			return d.Skip()
		}
		return err
	})
	return item, err
}

func decodeLineItemBytes(data []byte) (cart.LineItem, error) {
	item, err := decodeLineItem(jx.DecodeBytes(data))
	if err != nil {
		return cart.LineItem{}, errors.Wrap(err, "decode cart item")
	}
	return item, nil
}

func decodeLineItems(data []byte) ([]cart.LineItem, error) {
	items := []cart.LineItem{}
	d := jx.DecodeBytes(data)
	err := d.Arr(func(d *jx.Decoder) error {
		item, err := decodeLineItem(d)
		if err != nil {
			return err
		}
		items = append(items, item)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "decode cart items")
	}
	return items, nil
}

func decodeSummary(data []byte) (cart.Summary, error) {
	var s cart.Summary
	d := jx.DecodeBytes(data)
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "total":
			s.Total, err = decodeDecimal(d)
		case "item_count":
			s.ItemCount, err = d.Int()
		case "items":
			s.Lines, err = d.Int()
		default:
			return d.Skip()
		}
		return err
	})
	if err != nil {
		return cart.Summary{}, errors.Wrap(err, "decode cart summary")
	}
	return s, nil
}

func encodeQuantity(quantity int) []byte {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("quantity")
	e.Int(quantity)
	e.ObjEnd()
	return e.Bytes()
}

func encodeAddItem(r AddItemRequest) []byte {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("user_session")
	e.Str(r.UserSession)
	e.FieldStart("product_name")
	e.Str(r.ProductName)
	e.FieldStart("quantity")
	e.Int(r.Quantity)
	e.FieldStart("unit_price")
	e.Num(jx.Num(r.UnitPrice.String()))
	e.ObjEnd()
	return e.Bytes()
}

// --- Orders ---

func decodeOrderObj(d *jx.Decoder) (order.Order, error) {
	var o order.Order
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "id":
			o.ID, err = d.Int64()
		case "user_session":
			o.UserSession, err = d.Str()
		case "customer_name":
			o.CustomerName, err = d.Str()
		case "customer_email":
			o.CustomerEmail, err = d.Str()
		case "customer_phone":
			o.CustomerPhone, err = decodeOptStr(d)
		case "total_amount":
			o.TotalAmount, err = decodeDecimal(d)
		case "status":
			o.Status, err = d.Str()
		case "created_at":
			o.CreatedAt, err = decodeTime(d)
		case "updated_at":
			o.UpdatedAt, err = decodeTime(d)
		default:
			return d.Skip()
		}
		return err
	})
	return o, err
}

func decodeOrder(data []byte) (order.Order, error) {
	o, err := decodeOrderObj(jx.DecodeBytes(data))
	if err != nil {
		return order.Order{}, errors.Wrap(err, "decode order")
	}
	return o, nil
}

func decodeOrders(data []byte) ([]order.Order, error) {
	orders := []order.Order{}
	d := jx.DecodeBytes(data)
	err := d.Arr(func(d *jx.Decoder) error {
		o, err := decodeOrderObj(d)
		if err != nil {
			return err
		}
		orders = append(orders, o)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "decode orders")
	}
	return orders, nil
}

func encodeCreateOrder(r order.CreateRequest) []byte {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("user_session")
	e.Str(r.UserSession)
	e.FieldStart("customer_name")
	e.Str(r.CustomerName)
	e.FieldStart("customer_email")
	e.Str(r.CustomerEmail)
	e.FieldStart("customer_phone")
	e.Str(r.CustomerPhone)
	e.FieldStart("customer_address")
	e.Str(r.CustomerAddress)
	e.ObjEnd()
	return e.Bytes()
}

// --- Products ---

func decodeProducts(data []byte) ([]product.Product, error) {
	products := []product.Product{}
	d := jx.DecodeBytes(data)
	err := d.Arr(func(d *jx.Decoder) error {
		var p product.Product
		err := d.Obj(func(d *jx.Decoder, key string) error {
			var err error
			switch key {
			case "id":
				p.ID, err = d.Int64()
			case "name":
				p.Name, err = d.Str()
			case "description":
				p.Description, err = d.Str()
			case "price":
				p.Price, err = decodeDecimal(d)
			case "category":
				p.Category, err = d.Str()
			case "available":
				p.Available, err = d.Bool()
			default:
				return d.Skip()
			}
			return err
		})
		if err != nil {
			return err
		}
		products = append(products, p)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "decode products")
	}
	return products, nil
}

// --- Auth ---

func decodeAccount(data []byte) (Account, error) {
	var a Account
	d := jx.DecodeBytes(data)
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "id":
			a.ID, err = d.Int64()
		case "username":
			a.Username, err = d.Str()
		case "email":
			a.Email, err = d.Str()
		case "is_admin":
			a.IsAdmin, err = d.Bool()
		case "created_at":
			a.CreatedAt, err = decodeTime(d)
		default:
			return d.Skip()
		}
		return err
	})
	if err != nil {
		return Account{}, errors.Wrap(err, "decode account")
	}
	return a, nil
}

func decodeToken(data []byte) (Token, error) {
	var t Token
	d := jx.DecodeBytes(data)
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "access_token":
			t.AccessToken, err = d.Str()
		case "token_type":
			t.TokenType, err = d.Str()
		case "username":
			t.Username, err = d.Str()
		case "is_admin":
			t.IsAdmin, err = d.Bool()
		default:
			return d.Skip()
		}
		return err
	})
	if err != nil {
		return Token{}, errors.Wrap(err, "decode token")
	}
	return t, nil
}

func encodeRegister(username, email, password string) []byte {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("username")
	e.Str(username)
	e.FieldStart("email")
	e.Str(email)
	e.FieldStart("password")
	e.Str(password)
	e.ObjEnd()
	return e.Bytes()
}

// --- Contact ---

func decodeContactMessage(data []byte) (ContactMessage, error) {
	var m ContactMessage
	d := jx.DecodeBytes(data)
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "id":
			m.ID, err = d.Int64()
		case "name":
			m.Name, err = d.Str()
		case "email":
			m.Email, err = d.Str()
		case "phone":
			m.Phone, err = decodeOptStr(d)
		case "message":
			m.Message, err = d.Str()
		case "is_read":
			m.IsRead, err = d.Bool()
		case "created_at":
			m.CreatedAt, err = decodeTime(d)
		default:
			return d.Skip()
		}
		return err
	})
	if err != nil {
		return ContactMessage{}, errors.Wrap(err, "decode contact message")
	}
	return m, nil
}

func encodeContact(r ContactRequest) []byte {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("name")
	e.Str(r.Name)
	e.FieldStart("email")
	e.Str(r.Email)
	if r.Phone != "" {
		e.FieldStart("phone")
		e.Str(r.Phone)
	}
	e.FieldStart("message")
	e.Str(r.Message)
	e.ObjEnd()
	return e.Bytes()
}
