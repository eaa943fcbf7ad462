package services

import "bloodlink/model"

var districts = []model.District{
	{ID: "1", Name: "Bagerhat"},
	{ID: "2", Name: "Bandarban"},
	{ID: "3", Name: "Barguna"},
	{ID: "4", Name: "Barishal"},
	{ID: "5", Name: "Bhola"},
	{ID: "6", Name: "Bogura"},
	{ID: "7", Name: "Brahmanbaria"},
	{ID: "8", Name: "Chandpur"},
	{ID: "9", Name: "Chapainawabganj"},
	{ID: "10", Name: "Chattogram"},
	{ID: "11", Name: "Chuadanga"},
	{ID: "12", Name: "Cox's Bazar"},
	{ID: "13", Name: "Cumilla"},
	{ID: "14", Name: "Dhaka"},
	{ID: "15", Name: "Dinajpur"},
	{ID: "16", Name: "Faridpur"},
	{ID: "17", Name: "Feni"},
	{ID: "18", Name: "Gaibandha"},
	{ID: "19", Name: "Gazipur"},
	{ID: "20", Name: "Gopalganj"},
	{ID: "21", Name: "Habiganj"},
	{ID: "22", Name: "Jamalpur"},
	{ID: "23", Name: "Jashore"},
	{ID: "24", Name: "Jhalokathi"},
	{ID: "25", Name: "Jhenaidah"},
	{ID: "26", Name: "Joypurhat"},
	{ID: "27", Name: "Khagrachhari"},
	{ID: "28", Name: "Khulna"},
	{ID: "29", Name: "Kishoreganj"},
	{ID: "30", Name: "Kurigram"},
	{ID: "31", Name: "Kushtia"},
	{ID: "32", Name: "Lakshmipur"},
	{ID: "33", Name: "Lalmonirhat"},
	{ID: "34", Name: "Madaripur"},
	{ID: "35", Name: "Magura"},
	{ID: "36", Name: "Manikganj"},
	{ID: "37", Name: "Meherpur"},
	{ID: "38", Name: "Moulvibazar"},
	{ID: "39", Name: "Munshiganj"},
	{ID: "40", Name: "Mymensingh"},
	{ID: "41", Name: "Naogaon"},
	{ID: "42", Name: "Narail"},
	{ID: "43", Name: "Narayanganj"},
	{ID: "44", Name: "Narsingdi"},
	{ID: "45", Name: "Natore"},
	{ID: "46", Name: "Netrokona"},
	{ID: "47", Name: "Nilphamari"},
	{ID: "48", Name: "Noakhali"},
	{ID: "49", Name: "Pabna"},
	{ID: "50", Name: "Panchagarh"},
	{ID: "51", Name: "Patuakhali"},
	{ID: "52", Name: "Pirojpur"},
	{ID: "53", Name: "Rajbari"},
	{ID: "54", Name: "Rajshahi"},
	{ID: "55", Name: "Rangamati"},
	{ID: "56", Name: "Rangpur"},
	{ID: "57", Name: "Satkhira"},
	{ID: "58", Name: "Shariatpur"},
	{ID: "59", Name: "Sherpur"},
	{ID: "60", Name: "Sirajganj"},
	{ID: "61", Name: "Sunamganj"},
	{ID: "62", Name: "Sylhet"},
	{ID: "63", Name: "Tangail"},
	{ID: "64", Name: "Thakurgaon"},
}

var upazilas = []model.Upazila{
	{ID: "1", DistrictID: "14", Name: "Dhamrai"},
	{ID: "2", DistrictID: "14", Name: "Dohar"},
	{ID: "3", DistrictID: "14", Name: "Keraniganj"},
	{ID: "4", DistrictID: "14", Name: "Nawabganj"},
	{ID: "5", DistrictID: "14", Name: "Savar"},
	{ID: "6", DistrictID: "10", Name: "Anwara"},
	{ID: "7", DistrictID: "10", Name: "Banshkhali"},
	{ID: "8", DistrictID: "10", Name: "Boalkhali"},
	{ID: "9", DistrictID: "10", Name: "Chandanaish"},
	{ID: "10", DistrictID: "10", Name: "Fatikchhari"},
	{ID: "11", DistrictID: "10", Name: "Hathazari"},
	{ID: "12", DistrictID: "10", Name: "Lohagara"},
	{ID: "13", DistrictID: "10", Name: "Mirsharai"},
	{ID: "14", DistrictID: "10", Name: "Patiya"},
	{ID: "15", DistrictID: "10", Name: "Rangunia"},
	{ID: "16", DistrictID: "10", Name: "Raozan"},
	{ID: "17", DistrictID: "10", Name: "Sandwip"},
	{ID: "18", DistrictID: "10", Name: "Satkania"},
	{ID: "19", DistrictID: "10", Name: "Sitakunda"},
	{ID: "20", DistrictID: "62", Name: "Balaganj"},
	{ID: "21", DistrictID: "62", Name: "Beanibazar"},
	{ID: "22", DistrictID: "62", Name: "Bishwanath"},
	{ID: "23", DistrictID: "62", Name: "Companiganj"},
	{ID: "24", DistrictID: "62", Name: "Fenchuganj"},
	{ID: "25", DistrictID: "62", Name: "Golapganj"},
	{ID: "26", DistrictID: "62", Name: "Gowainghat"},
	{ID: "27", DistrictID: "62", Name: "Jaintiapur"},
	{ID: "28", DistrictID: "62", Name: "Kanaighat"},
	{ID: "29", DistrictID: "62", Name: "Osmani Nagar"},
	{ID: "30", DistrictID: "62", Name: "Zakiganj"},
	{ID: "31", DistrictID: "54", Name: "Bagha"},
	{ID: "32", DistrictID: "54", Name: "Bagmara"},
	{ID: "33", DistrictID: "54", Name: "Charghat"},
	{ID: "34", DistrictID: "54", Name: "Durgapur"},
	{ID: "35", DistrictID: "54", Name: "Godagari"},
	{ID: "36", DistrictID: "54", Name: "Mohanpur"},
	{ID: "37", DistrictID: "54", Name: "Paba"},
	{ID: "38", DistrictID: "54", Name: "Puthia"},
	{ID: "39", DistrictID: "54", Name: "Tanore"},
	{ID: "40", DistrictID: "28", Name: "Batiaghata"},
	{ID: "41", DistrictID: "28", Name: "Dacope"},
	{ID: "42", DistrictID: "28", Name: "Dighalia"},
	{ID: "43", DistrictID: "28", Name: "Dumuria"},
	{ID: "44", DistrictID: "28", Name: "Koyra"},
	{ID: "45", DistrictID: "28", Name: "Paikgachha"},
	{ID: "46", DistrictID: "28", Name: "Phultala"},
	{ID: "47", DistrictID: "28", Name: "Rupsha"},
	{ID: "48", DistrictID: "28", Name: "Terokhada"},
	{ID: "49", DistrictID: "4", Name: "Agailjhara"},
	{ID: "50", DistrictID: "4", Name: "Babuganj"},
	{ID: "51", DistrictID: "4", Name: "Bakerganj"},
	{ID: "52", DistrictID: "4", Name: "Banaripara"},
	{ID: "53", DistrictID: "4", Name: "Gaurnadi"},
	{ID: "54", DistrictID: "4", Name: "Hizla"},
	{ID: "55", DistrictID: "4", Name: "Mehendiganj"},
	{ID: "56", DistrictID: "4", Name: "Muladi"},
	{ID: "57", DistrictID: "4", Name: "Wazirpur"},
	{ID: "58", DistrictID: "56", Name: "Badarganj"},
	{ID: "59", DistrictID: "56", Name: "Gangachhara"},
	{ID: "60", DistrictID: "56", Name: "Kaunia"},
	{ID: "61", DistrictID: "56", Name: "Mithapukur"},
	{ID: "62", DistrictID: "56", Name: "Pirgachha"},
	{ID: "63", DistrictID: "56", Name: "Pirganj"},
	{ID: "64", DistrictID: "56", Name: "Taraganj"},
	{ID: "65", DistrictID: "40", Name: "Bhaluka"},
	{ID: "66", DistrictID: "40", Name: "Dhobaura"},
	{ID: "67", DistrictID: "40", Name: "Fulbaria"},
	{ID: "68", DistrictID: "40", Name: "Gafargaon"},
	{ID: "69", DistrictID: "40", Name: "Gauripur"},
	{ID: "70", DistrictID: "40", Name: "Haluaghat"},
	{ID: "71", DistrictID: "40", Name: "Ishwarganj"},
	{ID: "72", DistrictID: "40", Name: "Muktagachha"},
	{ID: "73", DistrictID: "40", Name: "Nandail"},
	{ID: "74", DistrictID: "40", Name: "Phulpur"},
	{ID: "75", DistrictID: "40", Name: "Trishal"},
}
