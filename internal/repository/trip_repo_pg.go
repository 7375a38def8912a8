package repository

import (
	"context"

	"github.com/fstagno77/travel-organizer-sub001/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TripRepository interface {
	List(ctx context.Context, ownerEmail string) ([]domain.Trip, error)
	GetByID(ctx context.Context, id int64) (*domain.Trip, error)
	Create(ctx context.Context, trip *domain.Trip) error
	Delete(ctx context.Context, id int64) error
}

type PGTripRepository struct {
	db *pgxpool.Pool
}

func NewTripRepository(db *pgxpool.Pool) TripRepository {
	return &PGTripRepository{db: db}
}

func (r *PGTripRepository) List(ctx context.Context, ownerEmail string) ([]domain.Trip, error) {
	rows, err := r.db.Query(ctx, `SELECT id, title, owner_email, start_date, end_date, created_at, updated_at FROM trips WHERE owner_email=$1 ORDER BY start_date`, ownerEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trips := make([]domain.Trip, 0)
	for rows.Next() {
		var t domain.Trip
		if err := rows.Scan(&t.ID, &t.Title, &t.OwnerEmail, &t.StartDate, &t.EndDate, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		trips = append(trips, t)
	}
	return trips, rows.Err()
}

// GetByID loads the whole aggregate: the trip row plus its flights,
// hotels, and activities.
func (r *PGTripRepository) GetByID(ctx context.Context, id int64) (*domain.Trip, error) {
	row := r.db.QueryRow(ctx, `SELECT id, title, owner_email, start_date, end_date, created_at, updated_at FROM trips WHERE id=$1`, id)
	var t domain.Trip
	if err := row.Scan(&t.ID, &t.Title, &t.OwnerEmail, &t.StartDate, &t.EndDate, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}

	var err error
	if t.Flights, err = r.flights(ctx, id); err != nil {
		return nil, err
	}
	if t.Hotels, err = r.hotels(ctx, id); err != nil {
		return nil, err
	}
	if t.Activities, err = r.activities(ctx, id); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PGTripRepository) flights(ctx context.Context, tripID int64) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT id, trip_id, date, departure_time, arrival_time, arrival_next_day,
		departure_code, departure_city, departure_airport, departure_terminal,
		arrival_code, arrival_city, arrival_airport, arrival_terminal,
		airline, flight_number, booking_reference, passenger_name
		FROM flights WHERE trip_id=$1 ORDER BY date, departure_time`, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := rows.Scan(&f.ID, &f.TripID, &f.Date, &f.DepartureTime, &f.ArrivalTime, &f.ArrivalNextDay,
			&f.Departure.Code, &f.Departure.City, &f.Departure.Airport, &f.Departure.Terminal,
			&f.Arrival.Code, &f.Arrival.City, &f.Arrival.Airport, &f.Arrival.Terminal,
			&f.Airline, &f.FlightNumber, &f.BookingReference, &f.PassengerName); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (r *PGTripRepository) hotels(ctx context.Context, tripID int64) ([]domain.Hotel, error) {
	rows, err := r.db.Query(ctx, `SELECT id, trip_id, name, address, check_in_date, check_in_time,
		check_out_date, check_out_time, nights, booking_reference
		FROM hotels WHERE trip_id=$1 ORDER BY check_in_date`, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hotels := make([]domain.Hotel, 0)
	for rows.Next() {
		var h domain.Hotel
		if err := rows.Scan(&h.ID, &h.TripID, &h.Name, &h.Address, &h.CheckIn.Date, &h.CheckIn.Time,
			&h.CheckOut.Date, &h.CheckOut.Time, &h.Nights, &h.BookingReference); err != nil {
			return nil, err
		}
		hotels = append(hotels, h)
	}
	return hotels, rows.Err()
}

func (r *PGTripRepository) activities(ctx context.Context, tripID int64) ([]domain.Activity, error) {
	rows, err := r.db.Query(ctx, `SELECT id, trip_id, date, start_time, end_time, name, description, address, category
		FROM activities WHERE trip_id=$1 ORDER BY date, start_time`, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := make([]domain.Activity, 0)
	for rows.Next() {
		var a domain.Activity
		if err := rows.Scan(&a.ID, &a.TripID, &a.Date, &a.StartTime, &a.EndTime, &a.Name, &a.Description, &a.Address, &a.Category); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

// Create inserts the trip and all of its bookings in one transaction.
func (r *PGTripRepository) Create(ctx context.Context, trip *domain.Trip) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx, `INSERT INTO trips (title, owner_email, start_date, end_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`, trip.Title, trip.OwnerEmail, trip.StartDate, trip.EndDate).
		Scan(&trip.ID, &trip.CreatedAt, &trip.UpdatedAt); err != nil {
		return err
	}

	for i := range trip.Flights {
		f := &trip.Flights[i]
		f.TripID = trip.ID
		if err := tx.QueryRow(ctx, `INSERT INTO flights (trip_id, date, departure_time, arrival_time, arrival_next_day,
			departure_code, departure_city, departure_airport, departure_terminal,
			arrival_code, arrival_city, arrival_airport, arrival_terminal,
			airline, flight_number, booking_reference, passenger_name)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
			RETURNING id`,
			f.TripID, f.Date, f.DepartureTime, f.ArrivalTime, f.ArrivalNextDay,
			f.Departure.Code, f.Departure.City, f.Departure.Airport, f.Departure.Terminal,
			f.Arrival.Code, f.Arrival.City, f.Arrival.Airport, f.Arrival.Terminal,
			f.Airline, f.FlightNumber, f.BookingReference, f.PassengerName).Scan(&f.ID); err != nil {
			return err
		}
	}
	for i := range trip.Hotels {
		h := &trip.Hotels[i]
		h.TripID = trip.ID
		if err := tx.QueryRow(ctx, `INSERT INTO hotels (trip_id, name, address, check_in_date, check_in_time,
			check_out_date, check_out_time, nights, booking_reference)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
			RETURNING id`,
			h.TripID, h.Name, h.Address, h.CheckIn.Date, h.CheckIn.Time,
			h.CheckOut.Date, h.CheckOut.Time, h.Nights, h.BookingReference).Scan(&h.ID); err != nil {
			return err
		}
	}
	for i := range trip.Activities {
		a := &trip.Activities[i]
		a.TripID = trip.ID
		if err := tx.QueryRow(ctx, `INSERT INTO activities (trip_id, date, start_time, end_time, name, description, address, category)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
			RETURNING id`,
			a.TripID, a.Date, a.StartTime, a.EndTime, a.Name, a.Description, a.Address, a.Category).Scan(&a.ID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PGTripRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM trips WHERE id=$1`, id)
	return err
}

var _ TripRepository = (*PGTripRepository)(nil)
