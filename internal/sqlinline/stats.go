package sqlinline

const QStatsSummary = `--sql e64ff18c-8286-456a-bf9c-f004e88b0ecd
select
    (select count(*) from users where role = 'requester') as requesters,
    (select count(*) from users where role = 'volunteer') as volunteers,
    count(*) filter (where status = 'AwaitingVolunteer') as awaiting_volunteer,
    count(*) filter (where status = 'InProgress') as in_progress,
    count(*) filter (where status = 'Done') as done,
    count(*) filter (where status = 'Cancelled') as cancelled
from aid_requests;
`
