package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jonier/api-store/internal/infra/repository/db"
)

// fakeStore is an in-memory db.IStore so service tests run without Postgres.
// ExecTx runs the callback directly; rollback behavior belongs to the
// repository tests.
type fakeStore struct {
	users         map[int64]db.User
	kinds         map[int64]db.KindOfProduct
	products      map[int64]db.Product
	statuses      map[int64]db.OrderStatus
	orders        map[int64]db.Order
	details       map[int64]db.OrderDetail
	nextID        int64
	mutationCount int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    make(map[int64]db.User),
		kinds:    make(map[int64]db.KindOfProduct),
		products: make(map[int64]db.Product),
		statuses: make(map[int64]db.OrderStatus),
		orders:   make(map[int64]db.Order),
		details:  make(map[int64]db.OrderDetail),
	}
}

func (f *fakeStore) ExecTx(ctx context.Context, fn func(db.Querier) error) error {
	return fn(f)
}

func (f *fakeStore) id() int64 {
	f.nextID++
	return f.nextID
}

func (f *fakeStore) CreateUser(ctx context.Context, arg db.CreateUserParams) (db.User, error) {
	f.mutationCount++
	now := time.Now().UTC()
	u := db.User{
		ID:           f.id(),
		Email:        arg.Email,
		UserName:     arg.UserName,
		FirstName:    arg.FirstName,
		LastName:     arg.LastName,
		Address:      arg.Address,
		Telephone:    arg.Telephone,
		PasswordHash: arg.PasswordHash,
		Photo:        arg.Photo,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeStore) GetUserByID(ctx context.Context, id int64) (db.User, error) {
	u, ok := f.users[id]
	if !ok {
		return db.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (f *fakeStore) GetUserByUniqueKeys(ctx context.Context, arg db.GetUserByUniqueKeysParams) (db.User, error) {
	for _, u := range f.users {
		if u.Email == arg.Email && u.UserName == arg.UserName && u.Telephone == arg.Telephone {
			return u, nil
		}
	}
	return db.User{}, pgx.ErrNoRows
}

func (f *fakeStore) GetUserByIdentity(ctx context.Context, identity string) (db.User, error) {
	for _, u := range f.users {
		if u.Email == identity || u.UserName == identity {
			return u, nil
		}
	}
	return db.User{}, pgx.ErrNoRows
}

func (f *fakeStore) ListUsers(ctx context.Context) ([]db.User, error) {
	var users []db.User
	for _, u := range f.users {
		users = append(users, u)
	}
	return users, nil
}

func (f *fakeStore) UpdateUser(ctx context.Context, arg db.UpdateUserParams) (db.User, error) {
	f.mutationCount++
	u, ok := f.users[arg.ID]
	if !ok {
		return db.User{}, pgx.ErrNoRows
	}
	u.Email = arg.Email
	u.UserName = arg.UserName
	u.FirstName = arg.FirstName
	u.LastName = arg.LastName
	u.Address = arg.Address
	u.Telephone = arg.Telephone
	u.PasswordHash = arg.PasswordHash
	u.Photo = arg.Photo
	u.Active = arg.Active
	u.UpdatedAt = time.Now().UTC()
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeStore) DeleteUser(ctx context.Context, id int64) error {
	f.mutationCount++
	delete(f.users, id)
	return nil
}

func (f *fakeStore) CreateKindOfProduct(ctx context.Context, arg db.CreateKindOfProductParams) (db.KindOfProduct, error) {
	f.mutationCount++
	now := time.Now().UTC()
	k := db.KindOfProduct{ID: f.id(), Title: arg.Title, Active: arg.Active, CreatedAt: now, UpdatedAt: now}
	f.kinds[k.ID] = k
	return k, nil
}

func (f *fakeStore) GetKindOfProductByID(ctx context.Context, id int64) (db.KindOfProduct, error) {
	k, ok := f.kinds[id]
	if !ok {
		return db.KindOfProduct{}, pgx.ErrNoRows
	}
	return k, nil
}

func (f *fakeStore) GetKindOfProductByTitle(ctx context.Context, title string) (db.KindOfProduct, error) {
	for _, k := range f.kinds {
		if k.Title == title {
			return k, nil
		}
	}
	return db.KindOfProduct{}, pgx.ErrNoRows
}

func (f *fakeStore) ListKindOfProducts(ctx context.Context) ([]db.KindOfProduct, error) {
	var kinds []db.KindOfProduct
	for _, k := range f.kinds {
		kinds = append(kinds, k)
	}
	return kinds, nil
}

func (f *fakeStore) UpdateKindOfProduct(ctx context.Context, arg db.UpdateKindOfProductParams) (db.KindOfProduct, error) {
	f.mutationCount++
	k, ok := f.kinds[arg.ID]
	if !ok {
		return db.KindOfProduct{}, pgx.ErrNoRows
	}
	k.Title = arg.Title
	k.Active = arg.Active
	k.UpdatedAt = time.Now().UTC()
	f.kinds[k.ID] = k
	return k, nil
}

func (f *fakeStore) DeleteKindOfProduct(ctx context.Context, id int64) error {
	f.mutationCount++
	delete(f.kinds, id)
	return nil
}

func (f *fakeStore) CreateProduct(ctx context.Context, arg db.CreateProductParams) (db.Product, error) {
	f.mutationCount++
	now := time.Now().UTC()
	p := db.Product{
		ID:              f.id(),
		Title:           arg.Title,
		Description:     arg.Description,
		Price:           arg.Price,
		ImageURL:        arg.ImageURL,
		Active:          true,
		UserID:          arg.UserID,
		KindOfProductID: arg.KindOfProductID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	f.products[p.ID] = p
	return p, nil
}

func (f *fakeStore) GetProductByID(ctx context.Context, id int64) (db.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return db.Product{}, pgx.ErrNoRows
	}
	return p, nil
}

func (f *fakeStore) ListProducts(ctx context.Context) ([]db.Product, error) {
	var products []db.Product
	for _, p := range f.products {
		products = append(products, p)
	}
	return products, nil
}

func (f *fakeStore) UpdateProduct(ctx context.Context, arg db.UpdateProductParams) (db.Product, error) {
	f.mutationCount++
	p, ok := f.products[arg.ID]
	if !ok {
		return db.Product{}, pgx.ErrNoRows
	}
	p.Title = arg.Title
	p.Description = arg.Description
	p.Price = arg.Price
	p.ImageURL = arg.ImageURL
	p.Active = arg.Active
	p.UserID = arg.UserID
	p.KindOfProductID = arg.KindOfProductID
	p.UpdatedAt = time.Now().UTC()
	f.products[p.ID] = p
	return p, nil
}

func (f *fakeStore) DeleteProduct(ctx context.Context, id int64) error {
	f.mutationCount++
	delete(f.products, id)
	return nil
}

func (f *fakeStore) CreateOrderStatus(ctx context.Context, arg db.CreateOrderStatusParams) (db.OrderStatus, error) {
	f.mutationCount++
	now := time.Now().UTC()
	s := db.OrderStatus{ID: f.id(), Title: arg.Title, Active: arg.Active, CreatedAt: now, UpdatedAt: now}
	f.statuses[s.ID] = s
	return s, nil
}

func (f *fakeStore) CreateOrderStatusWithID(ctx context.Context, arg db.CreateOrderStatusWithIDParams) (db.OrderStatus, error) {
	f.mutationCount++
	now := time.Now().UTC()
	s := db.OrderStatus{ID: arg.ID, Title: arg.Title, Active: arg.Active, CreatedAt: now, UpdatedAt: now}
	f.statuses[s.ID] = s
	if arg.ID > f.nextID {
		f.nextID = arg.ID
	}
	return s, nil
}

func (f *fakeStore) SyncOrderStatusIDSeq(ctx context.Context) error {
	for id := range f.statuses {
		if id > f.nextID {
			f.nextID = id
		}
	}
	return nil
}

func (f *fakeStore) GetOrderStatusByID(ctx context.Context, id int64) (db.OrderStatus, error) {
	s, ok := f.statuses[id]
	if !ok {
		return db.OrderStatus{}, pgx.ErrNoRows
	}
	return s, nil
}

func (f *fakeStore) GetOrderStatusByTitle(ctx context.Context, title string) (db.OrderStatus, error) {
	for _, s := range f.statuses {
		if s.Title == title {
			return s, nil
		}
	}
	return db.OrderStatus{}, pgx.ErrNoRows
}

func (f *fakeStore) ListOrderStatuses(ctx context.Context) ([]db.OrderStatus, error) {
	var statuses []db.OrderStatus
	for _, s := range f.statuses {
		statuses = append(statuses, s)
	}
	return statuses, nil
}

func (f *fakeStore) UpdateOrderStatus(ctx context.Context, arg db.UpdateOrderStatusParams) (db.OrderStatus, error) {
	f.mutationCount++
	s, ok := f.statuses[arg.ID]
	if !ok {
		return db.OrderStatus{}, pgx.ErrNoRows
	}
	s.Title = arg.Title
	s.Active = arg.Active
	s.UpdatedAt = time.Now().UTC()
	f.statuses[s.ID] = s
	return s, nil
}

func (f *fakeStore) DeleteOrderStatus(ctx context.Context, id int64) error {
	f.mutationCount++
	delete(f.statuses, id)
	return nil
}

func (f *fakeStore) CreateOrder(ctx context.Context, arg db.CreateOrderParams) (db.Order, error) {
	f.mutationCount++
	now := time.Now().UTC()
	o := db.Order{
		ID:            f.id(),
		UserID:        arg.UserID,
		OrderStatusID: arg.OrderStatusID,
		SubTotal:      arg.SubTotal,
		Total:         arg.Total,
		Tps:           arg.Tps,
		Tvq:           arg.Tvq,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	f.orders[o.ID] = o
	return o, nil
}

func (f *fakeStore) GetOrderByID(ctx context.Context, id int64) (db.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return db.Order{}, pgx.ErrNoRows
	}
	return o, nil
}

func (f *fakeStore) ListOrders(ctx context.Context) ([]db.Order, error) {
	var orders []db.Order
	for _, o := range f.orders {
		orders = append(orders, o)
	}
	return orders, nil
}

func (f *fakeStore) ListOpenOrdersByUser(ctx context.Context, arg db.ListOpenOrdersByUserParams) ([]db.Order, error) {
	var orders []db.Order
	for _, o := range f.orders {
		if o.OrderStatusID == arg.OrderStatusID && o.UserID == arg.UserID {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (f *fakeStore) DeleteOrder(ctx context.Context, id int64) error {
	f.mutationCount++
	delete(f.orders, id)
	return nil
}

func (f *fakeStore) CreateOrderDetail(ctx context.Context, arg db.CreateOrderDetailParams) (db.OrderDetail, error) {
	f.mutationCount++
	now := time.Now().UTC()
	d := db.OrderDetail{
		ID:            f.id(),
		OrderID:       arg.OrderID,
		ProductID:     arg.ProductID,
		NumberOfItems: arg.NumberOfItems,
		UnitPrice:     arg.UnitPrice,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	f.details[d.ID] = d
	return d, nil
}

func (f *fakeStore) ListOrderDetailsByOrder(ctx context.Context, orderID int64) ([]db.OrderDetail, error) {
	var details []db.OrderDetail
	for _, d := range f.details {
		if d.OrderID == orderID {
			details = append(details, d)
		}
	}
	return details, nil
}

func (f *fakeStore) DeleteOrderDetailsByOrder(ctx context.Context, orderID int64) error {
	f.mutationCount++
	for id, d := range f.details {
		if d.OrderID == orderID {
			delete(f.details, id)
		}
	}
	return nil
}

var _ db.IStore = (*fakeStore)(nil)

// seed helpers

func (f *fakeStore) seedUser(email, userName string) db.User {
	u, _ := f.CreateUser(context.Background(), db.CreateUserParams{
		Email:        email,
		UserName:     userName,
		FirstName:    "Jonier",
		LastName:     "Murillo",
		Address:      "16 rue Maurice",
		Telephone:    "1234567890",
		PasswordHash: "x",
	})
	return u
}

func (f *fakeStore) seedKind(title string) db.KindOfProduct {
	k, _ := f.CreateKindOfProduct(context.Background(), db.CreateKindOfProductParams{Title: title, Active: true})
	return k
}

func (f *fakeStore) seedProduct(userID, kindID int64) db.Product {
	p, _ := f.CreateProduct(context.Background(), db.CreateProductParams{
		Title:           "Cupcake",
		Description:     "Vanilla cupcake",
		Price:           10,
		ImageURL:        "http://img/cupcake.png",
		UserID:          userID,
		KindOfProductID: kindID,
	})
	return p
}
