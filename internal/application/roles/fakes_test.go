package roles

import (
	"context"
	"sort"
	"sync"

	"github.com/retail/backend/internal/domain/catalog"
	"github.com/retail/backend/internal/domain/delivery"
	"github.com/retail/backend/internal/domain/order"
	"github.com/retail/backend/internal/domain/party"
	"github.com/retail/backend/internal/domain/shared"
)

// In-memory repositories backing the role scenario tests. Ids are
// assigned from a monotonic counter on first save, like the real store.

type memProductRepo struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]*catalog.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{nextID: 1, items: make(map[int64]*catalog.Product)}
}

func (r *memProductRepo) FindByID(_ context.Context, id int64) (*catalog.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return nil, shared.NotFoundError("Product not found")
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) FindAll(_ context.Context, _ shared.Filter) ([]catalog.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]catalog.Product, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memProductRepo) FindByTag(_ context.Context, tagID int64, _ shared.Filter) ([]catalog.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]catalog.Product, 0)
	for _, p := range r.items {
		if p.HasTag(tagID) {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memProductRepo) FindLowStock(_ context.Context, threshold int64) ([]catalog.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]catalog.Product, 0)
	for _, p := range r.items {
		if p.Inventory < threshold {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memProductRepo) FindAvailable(_ context.Context, _ shared.Filter) ([]catalog.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]catalog.Product, 0)
	for _, p := range r.items {
		if p.Inventory > 0 {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memProductRepo) Save(_ context.Context, product *catalog.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if product.ID == 0 {
		product.ID = r.nextID
		r.nextID++
	} else if product.ID >= r.nextID {
		r.nextID = product.ID + 1
	}
	cp := *product
	r.items[product.ID] = &cp
	return nil
}

func (r *memProductRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return shared.NotFoundError("Product not found")
	}
	delete(r.items, id)
	return nil
}

func (r *memProductRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.items)), nil
}

func (r *memProductRepo) Reserve(_ context.Context, productID, quantity int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[productID]
	if !ok {
		return shared.NotFoundError("Product not found")
	}
	if p.Inventory < quantity {
		return shared.ErrInsufficientInventory
	}
	p.Inventory -= quantity
	return nil
}

func (r *memProductRepo) Release(_ context.Context, productID, quantity int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[productID]
	if !ok {
		return shared.NotFoundError("Product not found")
	}
	p.Inventory += quantity
	return nil
}

func (r *memProductRepo) AdjustInventory(_ context.Context, productID, delta int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[productID]
	if !ok {
		return shared.NotFoundError("Product not found")
	}
	if p.Inventory+delta < 0 {
		return shared.ErrInsufficientInventory
	}
	p.Inventory += delta
	return nil
}

func (r *memProductRepo) ReplaceTags(_ context.Context, product *catalog.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[product.ID]
	if !ok {
		return shared.NotFoundError("Product not found")
	}
	p.Tags = append([]catalog.Tag(nil), product.Tags...)
	return nil
}

func (r *memProductRepo) detachTag(tagID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.items {
		p.RemoveTag(tagID)
	}
}

type memTagRepo struct {
	mu       sync.Mutex
	nextID   int64
	items    map[int64]*catalog.Tag
	products *memProductRepo
}

func newMemTagRepo(products *memProductRepo) *memTagRepo {
	return &memTagRepo{nextID: 1, items: make(map[int64]*catalog.Tag), products: products}
}

func (r *memTagRepo) FindByID(_ context.Context, id int64) (*catalog.Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.items[id]
	if !ok {
		return nil, shared.NotFoundError("Tag not found")
	}
	cp := *t
	return &cp, nil
}

func (r *memTagRepo) FindAll(_ context.Context, _ shared.Filter) ([]catalog.Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]catalog.Tag, 0, len(r.items))
	for _, t := range r.items {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memTagRepo) FindByName(_ context.Context, name string) (*catalog.Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.items {
		if t.Name == name {
			cp := *t
			return &cp, nil
		}
	}
	return nil, shared.NotFoundError("Tag not found")
}

func (r *memTagRepo) Save(_ context.Context, tag *catalog.Tag) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if tag.ID == 0 {
		tag.ID = r.nextID
		r.nextID++
	}
	cp := *tag
	r.items[tag.ID] = &cp
	return nil
}

func (r *memTagRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return shared.NotFoundError("Tag not found")
	}
	delete(r.items, id)
	return nil
}

func (r *memTagRepo) DeleteCascading(ctx context.Context, id int64) error {
	if err := r.Delete(ctx, id); err != nil {
		return err
	}
	r.products.detachTag(id)
	return nil
}

func (r *memTagRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.items)), nil
}

type memCustomerRepo struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]*party.Customer
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{nextID: 1, items: make(map[int64]*party.Customer)}
}

func (r *memCustomerRepo) FindByID(_ context.Context, id int64) (*party.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.items[id]
	if !ok {
		return nil, shared.NotFoundError("Customer not found")
	}
	cp := *c
	return &cp, nil
}

func (r *memCustomerRepo) FindAll(_ context.Context, _ shared.Filter) ([]party.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]party.Customer, 0, len(r.items))
	for _, c := range r.items {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memCustomerRepo) FindByUsername(_ context.Context, username string) (*party.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.items {
		if c.Username == username {
			cp := *c
			return &cp, nil
		}
	}
	return nil, shared.NotFoundError("Customer not found")
}

func (r *memCustomerRepo) Save(_ context.Context, customer *party.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if customer.ID == 0 {
		customer.ID = r.nextID
		r.nextID++
	}
	for idx := range customer.Addresses {
		if customer.Addresses[idx].ID == 0 {
			customer.Addresses[idx].ID = r.nextID
			r.nextID++
		}
	}
	for idx := range customer.PaymentMethods {
		if customer.PaymentMethods[idx].ID == 0 {
			customer.PaymentMethods[idx].ID = r.nextID
			r.nextID++
		}
	}
	cp := *customer
	r.items[customer.ID] = &cp
	return nil
}

func (r *memCustomerRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return shared.NotFoundError("Customer not found")
	}
	delete(r.items, id)
	return nil
}

func (r *memCustomerRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.items)), nil
}

type memEmployeeRepo struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]*party.Employee
}

func newMemEmployeeRepo() *memEmployeeRepo {
	return &memEmployeeRepo{nextID: 1, items: make(map[int64]*party.Employee)}
}

func (r *memEmployeeRepo) FindByID(_ context.Context, id int64) (*party.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.items[id]
	if !ok {
		return nil, shared.NotFoundError("Employee not found")
	}
	cp := *e
	return &cp, nil
}

func (r *memEmployeeRepo) FindAll(_ context.Context, _ shared.Filter) ([]party.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]party.Employee, 0, len(r.items))
	for _, e := range r.items {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memEmployeeRepo) FindByUsername(_ context.Context, username string) (*party.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.items {
		if e.Username == username {
			cp := *e
			return &cp, nil
		}
	}
	return nil, shared.NotFoundError("Employee not found")
}

func (r *memEmployeeRepo) Save(_ context.Context, employee *party.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if employee.ID == 0 {
		employee.ID = r.nextID
		r.nextID++
	}
	cp := *employee
	r.items[employee.ID] = &cp
	return nil
}

func (r *memEmployeeRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return shared.NotFoundError("Employee not found")
	}
	delete(r.items, id)
	return nil
}

func (r *memEmployeeRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.items)), nil
}

type memDeliveryPointRepo struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]*delivery.DeliveryPoint
}

func newMemDeliveryPointRepo() *memDeliveryPointRepo {
	return &memDeliveryPointRepo{nextID: 1, items: make(map[int64]*delivery.DeliveryPoint)}
}

func (r *memDeliveryPointRepo) FindByID(_ context.Context, id int64) (*delivery.DeliveryPoint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return nil, shared.NotFoundError("Delivery point not found")
	}
	cp := *p
	return &cp, nil
}

func (r *memDeliveryPointRepo) FindAll(_ context.Context, _ shared.Filter) ([]delivery.DeliveryPoint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]delivery.DeliveryPoint, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memDeliveryPointRepo) Save(_ context.Context, point *delivery.DeliveryPoint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if point.ID == 0 {
		point.ID = r.nextID
		r.nextID++
	}
	cp := *point
	r.items[point.ID] = &cp
	return nil
}

func (r *memDeliveryPointRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return shared.NotFoundError("Delivery point not found")
	}
	delete(r.items, id)
	return nil
}

func (r *memDeliveryPointRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.items)), nil
}

type memOrderRepo struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]*order.Order
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{nextID: 1, items: make(map[int64]*order.Order)}
}

func (r *memOrderRepo) FindByID(_ context.Context, id int64) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.items[id]
	if !ok {
		return nil, shared.NotFoundError("Order not found")
	}
	cp := *o
	cp.Lines = append([]order.OrderLine(nil), o.Lines...)
	return &cp, nil
}

func (r *memOrderRepo) FindAll(_ context.Context, _ shared.Filter) ([]order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]order.Order, 0, len(r.items))
	for _, o := range r.items {
		out = append(out, *o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memOrderRepo) FindByCustomer(_ context.Context, customerID int64) ([]order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]order.Order, 0)
	for _, o := range r.items {
		if o.CustomerID == customerID {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memOrderRepo) FindByStatus(_ context.Context, status order.OrderStatus) ([]order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]order.Order, 0)
	for _, o := range r.items {
		if o.Status == status {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memOrderRepo) FindByCustomerAndStatus(_ context.Context, customerID int64, status order.OrderStatus) ([]order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]order.Order, 0)
	for _, o := range r.items {
		if o.CustomerID == customerID && o.Status == status {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memOrderRepo) Save(_ context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o.ID == 0 {
		o.ID = r.nextID
		r.nextID++
	}
	for idx := range o.Lines {
		if o.Lines[idx].ID == 0 {
			o.Lines[idx].ID = r.nextID
			r.nextID++
		}
		o.Lines[idx].OrderID = o.ID
	}
	cp := *o
	cp.Lines = append([]order.OrderLine(nil), o.Lines...)
	r.items[o.ID] = &cp
	return nil
}

func (r *memOrderRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return shared.NotFoundError("Order not found")
	}
	delete(r.items, id)
	return nil
}

func (r *memOrderRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.items)), nil
}

func (r *memOrderRepo) CountAll(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.items)), nil
}
