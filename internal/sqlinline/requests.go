package sqlinline

const QInsertRequest = `--sql 8434e0f7-8867-4db6-9fda-7802341746f2
insert into aid_requests (category_id, requester_id, title, description, budget, priority, city, region)
values ($1, $2, $3, $4, $5, $6, $7, $8)
returning id;
`

const QSelectRequestByID = `--sql a9758828-0fec-4458-81ac-a2b9f02a86a4
select ar.id, ar.category_id, ar.requester_id, ar.volunteer_id, ar.title, ar.description,
       ar.budget, ar.priority, ar.city, ar.region, ar.status, ar.created_at, ar.updated_at,
       c.name, u_req.name, u_req.email, u_vol.name, u_vol.email
from aid_requests ar
join categories c on c.id = ar.category_id
join users u_req on u_req.id = ar.requester_id
left join users u_vol on u_vol.id = ar.volunteer_id
where ar.id = $1;
`

// QListRequests takes nullable filters: category_id, status, region, requester_id, volunteer_id.
const QListRequests = `--sql e458685f-e9be-4aca-8518-0da25f5c1068
select ar.id, ar.category_id, ar.requester_id, ar.volunteer_id, ar.title, ar.description,
       ar.budget, ar.priority, ar.city, ar.region, ar.status, ar.created_at, ar.updated_at,
       c.name, u_req.name, u_vol.name
from aid_requests ar
join categories c on c.id = ar.category_id
join users u_req on u_req.id = ar.requester_id
left join users u_vol on u_vol.id = ar.volunteer_id
where ($1::bigint is null or ar.category_id = $1)
  and ($2::text is null or ar.status = $2)
  and ($3::text is null or ar.region = $3)
  and ($4::bigint is null or ar.requester_id = $4)
  and ($5::bigint is null or ar.volunteer_id = $5)
order by ar.created_at desc, ar.id desc;
`

const QUpdateRequest = `--sql 512231a9-b9b9-45da-a9af-f3834b4cdad6
update aid_requests
set category_id = $3,
    title = $4,
    description = $5,
    budget = $6,
    priority = $7,
    city = $8,
    region = $9,
    updated_at = now()
where id = $1
  and requester_id = $2
  and status = 'AwaitingVolunteer';
`

// QAssignVolunteer is the compare-and-set that makes concurrent assignment safe.
const QAssignVolunteer = `--sql fbd111c1-b3cc-47b7-8eba-1c00a9af804a
update aid_requests
set volunteer_id = $2,
    status = 'InProgress',
    updated_at = now()
where id = $1
  and status = 'AwaitingVolunteer'
  and volunteer_id is null;
`

const QSetRequestStatus = `--sql 8ba595e2-921d-4af1-afa7-30ae27b4d365
update aid_requests
set status = $3,
    updated_at = now()
where id = $1
  and status = $2;
`
